package config

// CaseInsensitiveVar disables case-sensitive matching when present in the
// environment, regardless of its value.
const CaseInsensitiveVar = "CASE_INSENSITIVE"

// LookupEnv reports whether an environment variable is set, and its value.
// Matches the signature of os.LookupEnv so tests can substitute a fake.
type LookupEnv func(key string) (string, bool)

// Config carries the search parameters of a single invocation.
type Config struct {
	Query         string
	Path          string
	CaseSensitive bool
}

// MissingArgumentError reports a required positional argument that was not
// supplied on the command line.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument: " + e.Name
}

// FromArgs builds a Config from a raw argument list and an environment
// lookup. The first element of args is the program name and is discarded;
// the next two become the query and the file path, in that order. Case
// sensitivity defaults to true and is disabled by the presence of the
// CASE_INSENSITIVE environment variable. No further validation is done
// here; a nonexistent file surfaces at read time.
func FromArgs(args []string, lookupEnv LookupEnv) (*Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return nil, &MissingArgumentError{Name: "query"}
	}
	if len(args) < 2 {
		return nil, &MissingArgumentError{Name: "file path"}
	}

	_, caseInsensitive := lookupEnv(CaseInsensitiveVar)

	return &Config{
		Query:         args[0],
		Path:          args[1],
		CaseSensitive: !caseInsensitive,
	}, nil
}
