package scoring

import "errors"

// ErrInvalidArgument marks out-of-range scorer inputs and structurally
// invalid customer profiles. The engine raises it synchronously and never
// retries or masks it; callers decide whether to skip or abort.
var ErrInvalidArgument = errors.New("invalid argument")
