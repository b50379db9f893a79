package safego

import "github.com/hinfosvc/hinfosvc/pkg/e"

func Go(fn func()) {
	go func() {
		defer e.OnError("safeGo")

		fn()
	}()
}
