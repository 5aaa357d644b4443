/*
Package navigation gates every route transition behind the shell's completion flag.

The guard is a two-state machine. A shell starts Uninitialized; while in that
state every navigation outside "/survey" is redirected to DefaultRedirect.
Nothing in this package moves the shell to Initialized: the host must do it
explicitly, through configuration or State.MarkInitialized.

	state := navigation.NewState(false)
	action := navigation.Guard(navigation.Target{Path: "/"}, state)
	// action == navigation.Redirect("/survey?source=/static/intro.json")
*/
package navigation
