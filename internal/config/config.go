// Package config provides configuration file support for gpr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/richhaase/gemini-pr-review/internal/agent"
	"github.com/richhaase/gemini-pr-review/internal/checkout"
	"github.com/richhaase/gemini-pr-review/internal/github"
	"github.com/richhaase/gemini-pr-review/internal/review"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = ".gpr.yaml"

// Config represents the gpr configuration file.
// Pointer fields distinguish "not set" from an explicit empty value.
type Config struct {
	Agent       *string           `yaml:"agent"`
	OutputDir   *string           `yaml:"output_dir"`
	WorktreeDir *string           `yaml:"worktree_dir"`
	Fork        ForkConfig        `yaml:"fork"`
	ReviewAreas ReviewAreasConfig `yaml:"review_areas"`
}

// ForkConfig holds settings for registering fork remotes.
type ForkConfig struct {
	Host         *string `yaml:"host"`
	RemotePrefix *string `yaml:"remote_prefix"`
}

// ReviewAreasConfig holds the top-level directories the review directory is chosen from.
type ReviewAreasConfig struct {
	Primary  *string `yaml:"primary"`
	Fallback *string `yaml:"fallback"`
}

// LoadResult contains the loaded config and any warnings encountered.
type LoadResult struct {
	Config   *Config
	Warnings []string
}

// LoadFromDir reads .gpr.yaml from dir, discarding warnings.
func LoadFromDir(dir string) (*Config, error) {
	result, err := LoadFromDirWithWarnings(dir)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// LoadFromDirWithWarnings reads .gpr.yaml from dir (normally the repository root).
// Returns an empty config (not error) if the file doesn't exist.
func LoadFromDirWithWarnings(dir string) (*LoadResult, error) {
	return LoadFromPathWithWarnings(filepath.Join(dir, ConfigFileName))
}

// LoadFromPath reads a config file, discarding warnings.
func LoadFromPath(path string) (*Config, error) {
	result, err := LoadFromPathWithWarnings(path)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// LoadFromPathWithWarnings reads a config file and returns warnings for unknown keys.
// Returns an empty config (not error) if the file doesn't exist.
// Returns an error if the file exists but is invalid YAML or holds invalid values.
func LoadFromPathWithWarnings(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &LoadResult{Config: &Config{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	warnings := checkUnknownKeys(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}

	return &LoadResult{Config: &cfg, Warnings: warnings}, nil
}

// knownTopLevelKeys are the valid top-level keys in the config file.
var knownTopLevelKeys = []string{"agent", "output_dir", "worktree_dir", "fork", "review_areas"}

// knownSectionKeys are the valid keys of each nested section.
var knownSectionKeys = map[string][]string{
	"fork":         {"host", "remote_prefix"},
	"review_areas": {"primary", "fallback"},
}

// checkUnknownKeys checks for unknown keys in the YAML data and returns warnings.
func checkUnknownKeys(data []byte) []string {
	var warnings []string

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// Let the main parser report the error.
		return nil
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if !slices.Contains(knownTopLevelKeys, key) {
			warnings = append(warnings, unknownKeyWarning(key, "", knownTopLevelKeys))
			continue
		}

		known, isSection := knownSectionKeys[key]
		section, ok := raw[key].(map[string]any)
		if !isSection || !ok {
			continue
		}
		nested := make([]string, 0, len(section))
		for k := range section {
			nested = append(nested, k)
		}
		slices.Sort(nested)
		for _, k := range nested {
			if !slices.Contains(known, k) {
				warnings = append(warnings, unknownKeyWarning(k, key, known))
			}
		}
	}

	return warnings
}

func unknownKeyWarning(key, section string, candidates []string) string {
	warning := fmt.Sprintf("unknown key %q in %s", key, ConfigFileName)
	if section != "" {
		warning = fmt.Sprintf("unknown key %q in %s section of %s", key, section, ConfigFileName)
	}
	if suggestion := findSimilar(key, candidates); suggestion != "" {
		warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return warning
}

// findSimilar finds the most similar string from candidates using Levenshtein distance.
// Returns empty string if no candidate is similar enough (threshold: 3 edits).
func findSimilar(input string, candidates []string) string {
	const maxDistance = 3
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		dist := levenshtein(input, candidate)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshtein calculates the edit distance between two strings using two rolling rows.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	if c.Agent != nil && strings.TrimSpace(*c.Agent) == "" {
		return errors.New("agent must not be empty")
	}
	if c.WorktreeDir != nil {
		if err := validateWorktreeDir(*c.WorktreeDir); err != nil {
			return err
		}
	}
	if c.Fork.Host != nil {
		if err := validateName("fork.host", *c.Fork.Host); err != nil {
			return err
		}
	}
	if c.Fork.RemotePrefix != nil && strings.ContainsAny(*c.Fork.RemotePrefix, "/ \t") {
		return fmt.Errorf("fork.remote_prefix must not contain '/' or whitespace, got %q", *c.Fork.RemotePrefix)
	}
	if c.ReviewAreas.Primary != nil {
		if err := validateArea("review_areas.primary", *c.ReviewAreas.Primary); err != nil {
			return err
		}
	}
	if c.ReviewAreas.Fallback != nil {
		if err := validateArea("review_areas.fallback", *c.ReviewAreas.Fallback); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks resolved values, including those that came from env vars or flags.
func (r ResolvedConfig) Validate() error {
	if strings.TrimSpace(r.Agent) == "" {
		return errors.New("agent must not be empty")
	}
	if err := validateWorktreeDir(r.WorktreeDir); err != nil {
		return err
	}
	if err := validateName("fork.host", r.ForkHost); err != nil {
		return err
	}
	if strings.ContainsAny(r.RemotePrefix, "/ \t") {
		return fmt.Errorf("fork.remote_prefix must not contain '/' or whitespace, got %q", r.RemotePrefix)
	}
	if err := validateArea("review_areas.primary", r.PrimaryArea); err != nil {
		return err
	}
	return validateArea("review_areas.fallback", r.FallbackArea)
}

func validateName(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(v, "/ \t") {
		return fmt.Errorf("%s must not contain '/' or whitespace, got %q", field, v)
	}
	return nil
}

func validateArea(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.HasPrefix(v, "/") || strings.HasSuffix(v, "/") {
		return fmt.Errorf("%s must be a relative directory without leading or trailing '/', got %q", field, v)
	}
	return nil
}

func validateWorktreeDir(v string) error {
	if v == "" {
		return errors.New("worktree_dir must not be empty")
	}
	if filepath.IsAbs(v) {
		return fmt.Errorf("worktree_dir must be relative to the repository root, got %q", v)
	}
	return nil
}

// Defaults holds the built-in default values.
var Defaults = ResolvedConfig{
	Agent:        agent.DefaultCommand,
	OutputDir:    "", // current working directory
	WorktreeDir:  checkout.DefaultDir,
	ForkHost:     github.DefaultHost,
	RemotePrefix: github.DefaultRemotePrefix,
	PrimaryArea:  review.DefaultPrimaryArea,
	FallbackArea: review.DefaultFallbackArea,
}

// ResolvedConfig holds the final resolved configuration values.
type ResolvedConfig struct {
	Agent        string
	OutputDir    string
	WorktreeDir  string
	ForkHost     string
	RemotePrefix string
	PrimaryArea  string
	FallbackArea string
}

// Areas returns the review areas used by the directory selector.
func (r ResolvedConfig) Areas() review.Areas {
	return review.Areas{Primary: r.PrimaryArea, Fallback: r.FallbackArea}
}

// FlagState tracks whether a flag was explicitly set.
type FlagState struct {
	AgentSet     bool
	OutputDirSet bool
}

// EnvState captures env var values and whether they were set.
type EnvState struct {
	Agent           string
	AgentSet        bool
	OutputDir       string
	OutputDirSet    bool
	WorktreeDir     string
	WorktreeDirSet  bool
	ForkHost        string
	ForkHostSet     bool
	RemotePrefix    string
	RemotePrefixSet bool
	PrimaryArea     string
	PrimaryAreaSet  bool
	FallbackArea    string
	FallbackAreaSet bool
}

// LoadEnvState reads environment variables and returns their state.
// Empty variables count as unset.
func LoadEnvState() EnvState {
	var state EnvState
	state.Agent, state.AgentSet = lookupEnv("GPR_AGENT")
	state.OutputDir, state.OutputDirSet = lookupEnv("GPR_OUTPUT_DIR")
	state.WorktreeDir, state.WorktreeDirSet = lookupEnv("GPR_WORKTREE_DIR")
	state.ForkHost, state.ForkHostSet = lookupEnv("GPR_FORK_HOST")
	state.RemotePrefix, state.RemotePrefixSet = lookupEnv("GPR_REMOTE_PREFIX")
	state.PrimaryArea, state.PrimaryAreaSet = lookupEnv("GPR_PRIMARY_AREA")
	state.FallbackArea, state.FallbackAreaSet = lookupEnv("GPR_FALLBACK_AREA")
	return state
}

func lookupEnv(name string) (string, bool) {
	v := os.Getenv(name)
	return v, v != ""
}

// Resolve merges config file values with env vars and flags.
// Precedence: flags > env vars > config file > defaults
func Resolve(cfg *Config, envState EnvState, flagState FlagState, flagValues ResolvedConfig) ResolvedConfig {
	result := Defaults

	if cfg != nil {
		setIf(&result.Agent, cfg.Agent)
		setIf(&result.OutputDir, cfg.OutputDir)
		setIf(&result.WorktreeDir, cfg.WorktreeDir)
		setIf(&result.ForkHost, cfg.Fork.Host)
		setIf(&result.RemotePrefix, cfg.Fork.RemotePrefix)
		setIf(&result.PrimaryArea, cfg.ReviewAreas.Primary)
		setIf(&result.FallbackArea, cfg.ReviewAreas.Fallback)
	}

	if envState.AgentSet {
		result.Agent = envState.Agent
	}
	if envState.OutputDirSet {
		result.OutputDir = envState.OutputDir
	}
	if envState.WorktreeDirSet {
		result.WorktreeDir = envState.WorktreeDir
	}
	if envState.ForkHostSet {
		result.ForkHost = envState.ForkHost
	}
	if envState.RemotePrefixSet {
		result.RemotePrefix = envState.RemotePrefix
	}
	if envState.PrimaryAreaSet {
		result.PrimaryArea = envState.PrimaryArea
	}
	if envState.FallbackAreaSet {
		result.FallbackArea = envState.FallbackArea
	}

	if flagState.AgentSet {
		result.Agent = flagValues.Agent
	}
	if flagState.OutputDirSet {
		result.OutputDir = flagValues.OutputDir
	}

	return result
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
