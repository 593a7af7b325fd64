package display

// RefreshMsg tells the active screen that the View changed outside its
// own Update, for example when a feedback timer advanced the session.
type RefreshMsg struct{}
