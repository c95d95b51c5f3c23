package langkit

// MessageKind classifies a Message for both the header Logger renders
// and the color it's rendered in.
type MessageKind int

const (
	MessageError MessageKind = iota
	MessageWarning
	MessageInfo
)

// Message is a fully-formed diagnostic: a kind, an optional position
// trace (innermost call frame first), the source code it refers to, and
// a message/comment pair. Show renders it via Logger.
type Message struct {
	Kind    MessageKind
	Trace   []PositionInfo
	Code    *string
	Text    string
	Comment string
}

// NewMessage builds a Message from a trace (reversed so the innermost
// frame is printed first) and the code it refers to.
func NewMessage(code *string, trace []PositionInfo, kind MessageKind) Message {
	reversed := make([]PositionInfo, len(trace))
	for i, p := range trace {
		reversed[len(trace)-1-i] = p
	}

	return Message{Kind: kind, Trace: reversed, Code: code}
}

// NewMessageText builds a Message with no position trace at all, for
// diagnostics unrelated to a specific place in code.
func NewMessageText(kind MessageKind) Message {
	return Message{Kind: kind}
}

func fullTrace(meta *Metadata, pos PositionInfo) []PositionInfo {
	trace := append([]PositionInfo{}, meta.GetTrace()...)
	return append(trace, pos)
}

// NewErrAtToken, NewWarnAtToken, NewInfoAtToken build a Message at tok's
// position (EOF if tok is nil), prefixed with meta's accumulated trace.
func NewErrAtToken(meta *Metadata, tok *Token) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, FromToken(meta.GetPath(), tok)), MessageError)
}

func NewWarnAtToken(meta *Metadata, tok *Token) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, FromToken(meta.GetPath(), tok)), MessageWarning)
}

func NewInfoAtToken(meta *Metadata, tok *Token) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, FromToken(meta.GetPath(), tok)), MessageInfo)
}

// NewErrAtPosition, NewWarnAtPosition, NewInfoAtPosition build a Message
// at an explicit PositionInfo, prefixed with meta's accumulated trace.
func NewErrAtPosition(meta *Metadata, pos PositionInfo) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, pos), MessageError)
}

func NewWarnAtPosition(meta *Metadata, pos PositionInfo) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, pos), MessageWarning)
}

func NewInfoAtPosition(meta *Metadata, pos PositionInfo) Message {
	return NewMessage(meta.GetCode(), fullTrace(meta, pos), MessageInfo)
}

// WithMessage and WithComment attach the headline text and an optional
// follow-up comment; both return m so calls chain.
func (m Message) WithMessage(text string) Message {
	m.Text = text
	return m
}

func (m Message) WithComment(comment string) Message {
	m.Comment = comment
	return m
}

// Show renders m to stderr via a Logger.
func (m Message) Show() {
	logger := NewLogger(m.Kind, m.Trace)

	if len(m.Trace) > 0 {
		logger.Header(m.Kind).Text(m.Text).Path().PaddedLine(m.Comment).Snippet(m.Code)
	} else {
		logger.Header(m.Kind).Text(m.Text).PaddedLine(m.Comment)
	}
}
