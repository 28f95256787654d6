package cli

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// WithSpinner shows an indeterminate spinner on w while fn runs and clears
// it before returning fn's result.
func WithSpinner[T any](w io.Writer, description string, fn func() (T, error)) (T, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(spinnerInterval),
	)

	type result struct {
		err   error
		value T
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case res := <-done:
			_ = bar.Finish()
			return res.value, res.err
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
