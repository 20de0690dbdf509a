package domain

import "errors"

// Token verification failure modes. The HTTP layer collapses both into a
// uniform 401 so callers cannot probe which one occurred.
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
