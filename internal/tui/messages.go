package tui

import "github.com/fincaudita/agroconsole/models"

type loginDoneMsg struct {
	session models.Session
	err     error
}

type lookupsLoadedMsg struct {
	err error
}

type listLoadedMsg struct {
	err error
}

type actionDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type confirmRequestMsg struct {
	req confirmRequest
}

type toastMsg struct {
	toast toast
}

type clearToastMsg struct {
	seq uint64
}
