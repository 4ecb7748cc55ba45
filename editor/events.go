package editor

import "github.com/iw2rmb/scribe/buffer"

// ChangeEvent describes the buffer after an edit.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Position
	Dirty   bool
	Lines   int
}

func buildChangeEvent(b *buffer.Buffer, cursor buffer.Position) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  cursor,
		Dirty:   b.IsDirty(),
		Lines:   b.LineCount(),
	}
}

// DiskChangedMsg reports that something touched Path outside the editor. The
// model checks the file itself, so notifications caused by its own saves are
// ignored.
type DiskChangedMsg struct {
	Path string
}
