package errors

import "errors"

// Session errors.
var Unauthenticated = errors.New("pms: this command requires authentication, run 'pms register' or 'pms login' first.")
var SessionExpiredNoRefresh = errors.New("pms: session expired and no refresh token is saved, please log in again.")
var RefreshFailed = errors.New("pms: failed to refresh the access token")
var RefreshProtocolError = errors.New("pms: the registry returned no token")

// Registry errors.
var RegistryError = errors.New("pms: registry request failed")
var NotFound = errors.New("pms: not found")

// UserDeclined is returned when the user answers no to a confirmation
// prompt. It is not a failure, callers exit cleanly on it.
var UserDeclined = errors.New("pms: cancelled by user")

// Module install/update errors.
var MissingModuleName = errors.New("pms: missing module name")
var ResolutionFailed = errors.New("pms: failed to resolve the latest version")
var FailedDownloadError = errors.New("pms: failed to download module")
var ExtractionFailed = errors.New("pms: failed to extract module archive")
var MetadataWriteFailed = errors.New("pms: failed to save project metadata")

var ProjectNotInitialized = errors.New("pms: project not initialized, run 'pms init <name>' first.")
var InternalBug = errors.New("pms: internal bug, please contact us and we will fix the problem.")

// Invalid 'pms init'
var InvalidInitOptions = errors.New("pms: invalid 'pms init' argument, you must provide a name for the project to be initialized.")

// Invalid 'pms upload'
var InvalidUploadOptionsInvalidName = errors.New("pms: invalid 'pms upload' argument, the module name is not valid.")
var InvalidUploadOptionsInvalidVersion = errors.New("pms: invalid 'pms upload' argument, the version is not a valid version string.")
var InvalidUploadOptionsMissingFile = errors.New("pms: invalid 'pms upload' argument, you must provide an existing zip file.")
