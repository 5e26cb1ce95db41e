package applications

import "errors"

var (
	ErrNotFound       = errors.New("application not found")
	ErrDuplicate      = errors.New("already applied to this job")
	ErrJobUnavailable = errors.New("job is not open for applications")
	ErrResumeRequired = errors.New("a saved resume is required to apply")
	ErrForbidden      = errors.New("not allowed")
	ErrInvalidStatus  = errors.New("invalid status change")
)
