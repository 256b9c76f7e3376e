// Package cache provides a generic, concurrency-safe LRU cache.
//
// It bounds memory for values that are expensive to build and keyed by user input,
// such as compiled regular expressions:
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCreate(expr, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(expr)
//	})
package cache
