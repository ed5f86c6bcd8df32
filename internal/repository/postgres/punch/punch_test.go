package punch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type constraintError struct {
	violation bool
}

func (e constraintError) Error() string {
	return "ERROR: duplicate key value violates unique constraint \"punches_one_active_per_mechanic\" (SQLSTATE=23505)"
}

func (e constraintError) IntegrityViolation() bool {
	return e.violation
}

func TestIsIntegrityViolation(t *testing.T) {
	assert.True(t, isIntegrityViolation(constraintError{violation: true}))
	assert.True(t, isIntegrityViolation(errors.Wrap(constraintError{violation: true}, "creating punch")))

	assert.False(t, isIntegrityViolation(constraintError{violation: false}))
	assert.False(t, isIntegrityViolation(errors.New("connection refused")))
	assert.False(t, isIntegrityViolation(nil))
}
