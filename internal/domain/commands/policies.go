package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// Policy maps the result of one patch invocation to the error an entry point surfaces.
type Policy func(result entities.PatchResult) error

// AssertPolicy is used as a pre-flight guard before a dependent build. It never logs; the
// caller formats the returned error.
func AssertPolicy(result entities.PatchResult) error {
	switch result.Outcome {
	case entities.OutcomeAlreadyPatched, entities.OutcomeApplied:
		return nil
	case entities.OutcomeNotPatched, entities.OutcomeWouldApply:
		return fmt.Errorf(
			"%w: %s is missing the vite patch, run `vitepatch apply` first",
			entities.ErrPatchNotApplied, result.File,
		)
	default:
		return result.Err
	}
}

// InteractivePolicy reports the outcome of the CLI apply command.
func InteractivePolicy(result entities.PatchResult) error {
	switch result.Outcome {
	case entities.OutcomeAlreadyPatched:
		logger.Info("Vite already patched.")
		return nil
	case entities.OutcomeApplied:
		logger.Info("Vite successfully patched.")
		return nil
	case entities.OutcomeWouldApply:
		logger.Infof("[DRY RUN] Vite %s would be patched.", result.Version)
		return nil
	default:
		return result.Err
	}
}

// InstallHookPolicy reports the outcome of the package installation hook. A version
// mismatch only warns so the host installation keeps going.
func InstallHookPolicy(result entities.PatchResult) error {
	if result.Outcome == entities.OutcomeVersionMismatch {
		logger.Warnf("Skipping vite patch: %v", result.Err)
		return nil
	}
	return InteractivePolicy(result)
}
