package domain

// User is a profile whose name preferences are being recorded
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// View identifies which screen a chat is currently on
type View string

const (
	ViewProfileSelect View = "profile_select"
	ViewSwipe         View = "swipe"
	ViewBoard         View = "board"
)

// Session holds client-side state for one chat: the selected profile,
// the candidate queue and the current drag offset. The queue is a FIFO;
// decisions always apply to the head element.
type Session struct {
	Profile    *User
	Queue      []Name
	View       View
	Loading    bool
	DragOffset float64
}

// FrontCard returns the head of the queue, or nil when empty
func (s *Session) FrontCard() *Name {
	if len(s.Queue) == 0 {
		return nil
	}
	return &s.Queue[0]
}

// BackCard returns the card stacked behind the front one, or nil
func (s *Session) BackCard() *Name {
	if len(s.Queue) < 2 {
		return nil
	}
	return &s.Queue[1]
}
