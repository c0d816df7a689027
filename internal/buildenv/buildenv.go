// Package buildenv reads the identifiers the pipeline controller hands
// to publish jobs through the process environment.
package buildenv

import "github.com/kelseyhightower/envconfig"

// Env carries the identifiers of the currently running publish job.
type Env struct {
	// FLAT_MANAGER_JOB_ID
	JobID int64 `split_words:"true" required:"true"`
	// FLAT_MANAGER_BUILD_ID
	BuildID int64 `split_words:"true" required:"true"`
}

// NewFromEnv returns Env initialised from environment variables, or an
// error if either identifier is missing or not an integer.
func NewFromEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("flat_manager", &env); err != nil {
		return Env{}, err
	}
	return env, nil
}
