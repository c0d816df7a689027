package buildenv_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/flatkit/publisher/internal/buildenv"
	"gitlab.com/flatkit/publisher/internal/testhelper"
)

func TestNewFromEnv(t *testing.T) {
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_JOB_ID", "1234")()
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_BUILD_ID", "5678")()

	env, err := buildenv.NewFromEnv()
	require.NoError(t, err)
	require.Equal(t, int64(1234), env.JobID)
	require.Equal(t, int64(5678), env.BuildID)
}

func TestNewFromEnv_missingJobID(t *testing.T) {
	defer testhelper.UnsetEnvironment(t, "FLAT_MANAGER_JOB_ID")()
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_BUILD_ID", "5678")()

	_, err := buildenv.NewFromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FLAT_MANAGER_JOB_ID")
}

func TestNewFromEnv_missingBuildID(t *testing.T) {
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_JOB_ID", "1234")()
	defer testhelper.UnsetEnvironment(t, "FLAT_MANAGER_BUILD_ID")()

	_, err := buildenv.NewFromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FLAT_MANAGER_BUILD_ID")
}

func TestNewFromEnv_nonInteger(t *testing.T) {
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_JOB_ID", "not-a-number")()
	defer testhelper.ModifyEnvironment(t, "FLAT_MANAGER_BUILD_ID", "5678")()

	_, err := buildenv.NewFromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FLAT_MANAGER_JOB_ID")
}
