package appstate

// Reduce returns the state resulting from applying op to state.
//
// Reduce never modifies state. Operations that change nothing,
// like SetTheme with an invalid theme or unknown operation types,
// return the passed state pointer itself.
// A nil state is replaced with NewState(DefaultTheme).
//
// Reduce has no side effects, persisting the theme
// after ToggleTheme is done by Store.Dispatch.
func Reduce(state *State, op Operation) *State {
	if state == nil {
		state = NewState(DefaultTheme)
	}
	var next *State
	switch op := op.(type) {
	case SetExplorerData:
		next = state.clone()
		next.ExplorerData = NormalizeExplorerData(op.Payload)

	case SetPaginationPageCount:
		next = state.clone()
		count := op.Count
		next.PaginationNrOfPages = &count

	case SetRefresh:
		next = state.clone()
		next.Refresh = op.Refresh

	case ActivateProgress:
		next = state.clone()
		next.ShowProgressOverlay = true

	case DeactivateProgress:
		next = state.clone()
		next.ShowProgressOverlay = false

	case SetErrorMessage:
		next = state.clone()
		msg := op.Message
		next.ErrorMessage = &msg

	case ClearErrorMessage:
		next = state.clone()
		next.ErrorMessage = nil

	case SetLocale:
		next = state.clone()
		locale := op.Locale
		next.Locale = &locale

	case SetTheme:
		if !op.Theme.Valid() {
			return state
		}
		next = state.clone()
		next.Theme = op.Theme

	case ToggleTheme:
		next = state.clone()
		next.Theme = state.Theme.Toggled()

	case SetConnectionCheck:
		next = state.clone()
		next.ConnectionCheck = op.Ok

	case SetNotification:
		next = state.clone()
		next.Notification = op.Notification.clone()

	default:
		return state
	}
	return next
}
