package client

import (
	"io"
	"os"

	"packmyseal.io/pms/pkg/checker"
	"packmyseal.io/pms/pkg/credentials"
	"packmyseal.io/pms/pkg/logger"
	"packmyseal.io/pms/pkg/registry"
	"packmyseal.io/pms/pkg/session"
	"packmyseal.io/pms/pkg/settings"
	"packmyseal.io/pms/pkg/utils"
)

// PmsClient is the client of pms.
type PmsClient struct {
	// The writer of the log.
	logWriter io.Writer
	// The settings of pms loaded from the global configuration file.
	settings settings.Settings
	// The protocol client of the pms registry.
	registry *registry.Client
	// The credential store of the current user.
	creds *credentials.Store
	// The session manager renewing the access token on demand.
	session *session.Manager
	// The checker to validate module references before publishing.
	ModChecker *checker.ModChecker
	// confirm decides confirmation prompts. The default asks on stdin.
	confirm func(msg string) bool
}

// ClientOption configures how we set up PmsClient.
type ClientOption func(*PmsClient) error

// WithSettings sets the settings of the client.
func WithSettings(s *settings.Settings) ClientOption {
	return func(c *PmsClient) error {
		c.settings = *s
		return nil
	}
}

// WithCredentialsStore sets the credential store of the client.
func WithCredentialsStore(store *credentials.Store) ClientOption {
	return func(c *PmsClient) error {
		c.creds = store
		return nil
	}
}

// NewPmsClient will create a new pms client with default settings.
func NewPmsClient(options ...ClientOption) (*PmsClient, error) {
	settings := settings.GetSettings()
	if settings.ErrorEvent != nil {
		return nil, settings.ErrorEvent
	}

	client := &PmsClient{
		logWriter: defaultLogWriter(),
		settings:  *settings,
		ModChecker: checker.NewModChecker(
			checker.WithCheckers(checker.NewIdentChecker(), checker.NewVersionChecker()),
		),
	}

	for _, option := range options {
		if err := option(client); err != nil {
			return nil, err
		}
	}

	if client.creds == nil {
		creds, err := credentials.NewDefaultStore()
		if err != nil {
			return nil, err
		}
		client.creds = creds
	}

	client.registry = registry.NewClient(&client.settings)
	client.session = session.NewManager(client.creds, client.registry)

	if client.confirm == nil {
		client.confirm = func(msg string) bool {
			return utils.AskConfirm(msg, os.Stdin, os.Stdout)
		}
	}

	return client, nil
}

// defaultLogWriter routes client output through the levelled writer
// when PMS_LOG_LEVEL asks for debug output.
func defaultLogWriter() io.Writer {
	if os.Getenv("PMS_LOG_LEVEL") == string(logger.DebugLevel) {
		return logger.NewLogWriter()
	}
	return os.Stdout
}

// SetLogWriter will set the log writer of the client.
func (c *PmsClient) SetLogWriter(writer io.Writer) {
	c.logWriter = writer
}

// GetLogWriter will return the log writer of the client.
func (c *PmsClient) GetLogWriter() io.Writer {
	return c.logWriter
}

// SetConfirm replaces the confirmation predicate, used by tests and by
// callers that want non-interactive behavior.
func (c *PmsClient) SetConfirm(confirm func(msg string) bool) {
	c.confirm = confirm
}

// GetCredentialsStore returns the credential store of the client.
func (c *PmsClient) GetCredentialsStore() *credentials.Store {
	return c.creds
}

// GetRegistry returns the registry protocol client.
func (c *PmsClient) GetRegistry() *registry.Client {
	return c.registry
}

// EnsureSession guards operations that require authentication, see
// session.Manager.
func (c *PmsClient) EnsureSession() (*credentials.Record, error) {
	return c.session.EnsureSession()
}
