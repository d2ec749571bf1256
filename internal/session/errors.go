package session

import "errors"

// ErrNoSession is returned by Restore when nobody has signed in on this
// machine or the session was cleared at logout.
var ErrNoSession = errors.New("no stored session")
