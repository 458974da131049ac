package check

// Ready checks that a receive from ch completes without
// blocking. The received value is returned as the derived
// value; a closed channel counts as ready and yields the zero
// value. The receive consumes an element on success.
func Ready[T any](ch <-chan T, opts ...Option) (T, error) {
	select {
	case v := <-ch:
		return v, nil
	default:
	}
	var zero T
	l := labelsFor(opts, "ch")
	return zero, newDiag("Ready", "ch").
		field("ch label", l[0]).
		field("cause", "receive would block").
		fail()
}

// Pending checks that a receive from ch would block. When the
// check fails, the value that made the channel ready has been
// consumed and is shown in the diagnostic.
func Pending[T any](ch <-chan T, opts ...Option) error {
	select {
	case v, open := <-ch:
		l := labelsFor(opts, "ch")
		d := newDiag("Pending", "ch").
			field("ch label", l[0])
		if open {
			d.field("received debug", debugOf(v))
		} else {
			d.field("cause", "channel is closed")
		}
		return d.fail()
	default:
		return nil
	}
}
