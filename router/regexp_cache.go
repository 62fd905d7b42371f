package router

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// regexpCacheSize bounds the number of compiled expressions kept. Route
// templates and their variable sub-patterns are the only keys, so the
// bound is only reached by applications that register routes on the fly.
const regexpCacheSize = 1024

// regexpCache caches compiled regular expressions by pattern string.
var regexpCache = func() *lru.Cache[string, *regexp.Regexp] {
	c, err := lru.New[string, *regexp.Regexp](regexpCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

// compileRegexp returns a cached *regexp.Regexp for the given pattern,
// compiling and caching it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexpCache.Get(pattern); ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexpCache.Add(pattern, re)

	return re, nil
}
