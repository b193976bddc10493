package creds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/s3cerr"
)

func TestRunSetupScriptSuccess(t *testing.T) {
	err := RunSetupScript(context.Background(), "exit 0")
	require.NoError(t, err)
}

func TestRunSetupScriptFailureReportsExitCode(t *testing.T) {
	err := RunSetupScript(context.Background(), "exit 7")
	require.Error(t, err)

	assert.Equal(t, s3cerr.SetupScriptFailed, s3cerr.Of(err))
	var se *s3cerr.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 7, se.ExitCode)
}
