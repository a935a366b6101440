// Copyright 2024 The PackMySeal Authors. All rights reserved.

package reporter

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init the log.
func InitReporter() {
	log.SetFlags(0)
	logrus.SetLevel(logrus.ErrorLevel)
}

// Report prints to the logger.
// Arguments are handled in the manner of fmt.Println.
func Report(v ...any) {
	log.Println(v...)
}

// ExitWithReport prints to the logger and exit with 0.
// Arguments are handled in the manner of fmt.Println.
func ExitWithReport(v ...any) {
	log.Println(v...)
	os.Exit(0)
}

// Fatal prints to the logger and exit with 1.
// Arguments are handled in the manner of fmt.Println.
func Fatal(v ...any) {
	log.Fatal(v...)
}

// Event is the interface that specifies the event used to show logs to users.
type Event interface {
	Event() string
}

type EventType int

const (
	Default EventType = iota

	// errors event type means the event is an error.
	FailedLoadSettings
	FailedLoadCredential
	FailedSaveCredential
	FailedLoadManifest
	FailedSaveManifest
	FailedRegister
	FailedLogin
	FailedLogout
	FailedRefresh
	FailedWhoami
	FailedResolveLatest
	FailedDownload
	FailedExtract
	FailedUpload
	FailedDelete
	FailedRemove
	FailedInit
	FailedGetVersions
	InvalidModuleName
	InvalidModuleVersion
	InvalidCmd
	Bug

	// normal event type means the event is a normal event.
	Installing
	Downloading
	Removing
	Updating
	UpToDate
	SelectLatestVersion
	Cancelled
)

// PmsEvent is the event used to show pms logs to users.
type PmsEvent struct {
	errType EventType
	msg     string
	err     error
}

// Type returns the event type.
func (e *PmsEvent) Type() EventType {
	return e.errType
}

// Error makes PmsEvent can be used as an error.
func (e *PmsEvent) Error() string {
	result := ""
	if e.msg != "" {
		// append msg
		result = fmt.Sprintf("%s\n", e.msg)
	}
	if e.err != nil {
		result = fmt.Sprintf("%s%s\n", result, e.err.Error())
	}
	return result
}

// Unwrap exposes the wrapped error so callers can branch with errors.Is.
func (e *PmsEvent) Unwrap() error {
	return e.err
}

// Event returns the msg of the event without error message.
func (e *PmsEvent) Event() string {
	if e.msg != "" {
		return fmt.Sprintf("%s\n", e.msg)
	}
	return ""
}

// NewErrorEvent returns a new PmsEvent with error.
func NewErrorEvent(errType EventType, err error, args ...string) *PmsEvent {
	return &PmsEvent{
		errType: errType,
		msg:     strings.Join(args, ""),
		err:     err,
	}
}

// NewEvent returns a new PmsEvent without error.
func NewEvent(errType EventType, args ...string) *PmsEvent {
	return &PmsEvent{
		errType: errType,
		msg:     strings.Join(args, ""),
		err:     nil,
	}
}

// ReportEventToStdout reports the event to users to stdout.
func ReportEventToStdout(event *PmsEvent) {
	fmt.Fprintf(os.Stdout, "%v", event.Event())
}

// ReportEventToStderr reports the event to users to stderr.
func ReportEventToStderr(event *PmsEvent) {
	fmt.Fprintf(os.Stderr, "%v", event.Event())
}

// ReportEventTo reports the event to users to the writer.
func ReportEventTo(event *PmsEvent, w io.Writer) {
	if w != nil {
		fmt.Fprintf(w, "%v", event.Event())
	}
}

func ReportMsgTo(msg string, w io.Writer) {
	if w != nil {
		fmt.Fprintf(w, "%s\n", msg)
	}
}
