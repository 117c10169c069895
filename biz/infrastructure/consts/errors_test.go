package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrMissingFields(t *testing.T) {
	err := ErrMissingFields("studentEmail", "classId")
	assert.Equal(t, codes.InvalidArgument, err.Code())
	assert.Equal(t, "missing required fields: studentEmail, classId", err.Error())
}

func TestErrnoGRPCStatus(t *testing.T) {
	st, ok := status.FromError(ErrUserAlreadyExists)
	assert.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Equal(t, "User already exists", st.Message())
}
