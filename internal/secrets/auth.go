// Package secrets keeps admin passwords per server so they need not be typed
// on every invocation.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/midir99/admint/internal/addr"
	"github.com/midir99/admint/internal/config"
	"github.com/midir99/admint/internal/field"
	"github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "admint"
	// FallbackFileName is the filename for fallback file storage
	FallbackFileName = "credentials.yaml"
)

// ErrNoPassword is returned when no password is stored for a server
var ErrNoPassword = errors.New("no admin password stored")

// StoreAdminPassword stores the admin password of server in the OS keyring.
// Falls back to file storage if keyring is unavailable.
func StoreAdminPassword(server addr.SocketV4, password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if err := field.ValidateCredential(password); err != nil {
		return err
	}

	err := keyring.Set(KeyringService, server.String(), password)
	if err == nil {
		return nil
	}
	logrus.WithError(err).Debug("keyring unavailable, storing admin password in file")

	return storeInFile(server, password)
}

// LoadAdminPassword retrieves the admin password of server
func LoadAdminPassword(server addr.SocketV4) (string, error) {
	password, err := keyring.Get(KeyringService, server.String())
	if err == nil {
		return password, nil
	}
	logrus.WithError(err).Debug("admin password not in keyring, trying file storage")

	return loadFromFile(server)
}

// ClearAdminPassword removes the admin password of server from storage
func ClearAdminPassword(server addr.SocketV4) error {
	keyringErr := keyring.Delete(KeyringService, server.String())
	if errors.Is(keyringErr, keyring.ErrNotFound) {
		keyringErr = nil
	}

	fileErr := deleteFromFile(server)

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear password from keyring (%v) and file (%v)", keyringErr, fileErr)
	}

	return nil
}

// credentials is the layout of the fallback file, keyed by server address
type credentials map[string]string

func storeInFile(server addr.SocketV4, password string) error {
	creds, err := readCredentials()
	if err != nil {
		return err
	}
	creds[server.String()] = password
	return writeCredentials(creds)
}

func loadFromFile(server addr.SocketV4) (string, error) {
	creds, err := readCredentials()
	if err != nil {
		return "", err
	}

	password, ok := creds[server.String()]
	if !ok {
		return "", fmt.Errorf("%w for %s in keyring or file storage", ErrNoPassword, server)
	}
	return password, nil
}

func deleteFromFile(server addr.SocketV4) error {
	creds, err := readCredentials()
	if err != nil {
		return err
	}
	if _, ok := creds[server.String()]; !ok {
		return nil
	}

	delete(creds, server.String())
	if len(creds) == 0 {
		path, err := credentialsPath()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete credentials file: %w", err)
		}
		return nil
	}
	return writeCredentials(creds)
}

// readCredentials returns an empty set when the file does not exist
func readCredentials() (credentials, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return credentials{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds := credentials{}
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}
	return creds, nil
}

func writeCredentials(creds credentials) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// 0600: the file holds plain text passwords
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

func credentialsPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get credentials file path: %w", err)
	}
	return filepath.Join(dir, FallbackFileName), nil
}
