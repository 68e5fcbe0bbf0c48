// Package optimistic provides the apply-then-confirm update helper: local
// state mutates immediately for responsiveness, and the mutation is rolled
// back if the confirming server call fails.
package optimistic

import "context"

// Update applies the local mutation, then runs the confirming call. On
// failure the revert function undoes the mutation and the call's error is
// returned. Both apply and revert must be cheap, synchronous, and safe to
// run back to back.
func Update(ctx context.Context, apply, revert func(), confirm func(ctx context.Context) error) error {
	apply()
	if err := confirm(ctx); err != nil {
		revert()
		return err
	}
	return nil
}
