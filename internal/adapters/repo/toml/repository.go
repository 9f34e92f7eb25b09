package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/solenne/whittle/internal/domain"
	"github.com/solenne/whittle/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	resultsPathKey    = "results.path"
	resultsFileMode   = 0o600
	resultsDirMode    = 0o700
	resultsConfigDir  = ".whittle"
	resultsConfigFile = "results.toml"
	tempFilePattern   = ".results-*.toml.tmp"
)

// Repository stores finished-game results in a TOML file. Writes go through
// a temp file followed by a rename, and a process-wide lock registry
// serializes access per resolved path.
type Repository struct {
	resultsPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ResultRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, resultsConfigDir, resultsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, resultsConfigDir))
	cfg.SetDefault(resultsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	resultsPath := cfg.GetString(resultsPathKey)
	if resultsPath == "" {
		return nil, errors.New("results path is empty")
	}
	resultsPath, err = normalizeResultsPath(resultsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{resultsPath: resultsPath, mu: lockForPath(resultsPath)}, nil
}

func (r *Repository) Append(ctx context.Context, result domain.GameResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	file.Results = append(file.Results, toSchema(result))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) List(ctx context.Context) ([]domain.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	results := make([]domain.GameResult, 0, len(file.Results))
	for _, entry := range file.Results {
		results = append(results, fromSchema(entry))
	}

	return results, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.resultsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read results file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode results file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.resultsPath), resultsDirMode); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode results file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.resultsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp results file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp results file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp results file: %w", err)
	}
	if err := os.Chmod(tempPath, resultsFileMode); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod temp results file: %w", err)
	}
	if err := os.Rename(tempPath, r.resultsPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace results file: %w", err)
	}

	return nil
}

func normalizeResultsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve results path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
