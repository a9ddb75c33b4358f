package domain

import "iter"

// Stream is a single-use, pull-based sequence of files.
// Each pipeline owns its own Stream; consuming it twice is not supported.
type Stream struct {
	seq iter.Seq2[*File, error]
}

// NewStream wraps a sequence into a Stream.
func NewStream(seq iter.Seq2[*File, error]) *Stream {
	return &Stream{seq: seq}
}

// FromFiles returns a Stream yielding the given files in order.
func FromFiles(files ...*File) *Stream {
	return NewStream(func(yield func(*File, error) bool) {
		for _, f := range files {
			if !yield(f, nil) {
				return
			}
		}
	})
}

// Failed returns a Stream that yields err and stops.
func Failed(err error) *Stream {
	return NewStream(func(yield func(*File, error) bool) {
		yield(nil, err)
	})
}

// All returns the underlying sequence.
// After an error is yielded the sequence ends.
func (s *Stream) All() iter.Seq2[*File, error] {
	return s.seq
}

// Map returns a Stream where every file is replaced by fn's result.
// An error from fn ends the stream.
func (s *Stream) Map(fn func(*File) (*File, error)) *Stream {
	return NewStream(func(yield func(*File, error) bool) {
		for f, err := range s.seq {
			if err != nil {
				yield(nil, err)
				return
			}
			out, err := fn(f)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	})
}

// Filter returns a Stream holding only the files fn keeps.
func (s *Stream) Filter(fn func(*File) (bool, error)) *Stream {
	return NewStream(func(yield func(*File, error) bool) {
		for f, err := range s.seq {
			if err != nil {
				yield(nil, err)
				return
			}
			keep, err := fn(f)
			if err != nil {
				yield(nil, err)
				return
			}
			if keep && !yield(f, nil) {
				return
			}
		}
	})
}

// Tap calls fn for every file passing through, leaving the stream unchanged.
func (s *Stream) Tap(fn func(*File)) *Stream {
	return s.Map(func(f *File) (*File, error) {
		fn(f)
		return f, nil
	})
}

// Collect drains the stream into a slice.
func (s *Stream) Collect() ([]*File, error) {
	var files []*File
	for f, err := range s.seq {
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}
