package assert

import "github.com/animus-rig/animus/aerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(aerror.New(message, args...))
	}
}
