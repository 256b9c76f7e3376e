// Package async provides generic futures used to run asynchronous validators.
//
// Async starts a function on its own goroutine and returns a *Future. Callers wait
// with Await, with AwaitContext to give up when a context ends, or poll IsComplete.
// WaitAll collects several futures in order.
//
//	f := async.Async(ctx, email, func(ctx context.Context, email string) (bool, error) {
//	    return users.IsEmailFree(ctx, email)
//	})
//	free, err := f.AwaitContext(ctx)
//
// A context that is already cancelled when Async is called completes the future with
// the context error without invoking the function. Panics are recovered and reported
// as ErrPanic.
package async
