package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The paginated grade and credit listings join the students table under
// the alias "s". These tests pin every such column reference to the
// schema so a renamed or mistyped column fails here instead of as a
// runtime 500.

var studentAliasRefs = regexp.MustCompile(`\bs\.([a-z_]+)`)

func studentSchemaColumns(t *testing.T) map[string]bool {
	t.Helper()

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	start := strings.Index(string(schema), "CREATE TABLE IF NOT EXISTS students (")
	require.GreaterOrEqual(t, start, 0, "students table definition not found")
	body := string(schema)[start:]
	end := strings.Index(body, ");")
	require.GreaterOrEqual(t, end, 0)
	body = body[:end]

	columns := make(map[string]bool)
	for _, line := range strings.Split(body, "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		if name == strings.ToUpper(name) {
			// Constraint lines (UNIQUE, CHECK, ...)
			continue
		}
		columns[name] = true
	}
	require.NotEmpty(t, columns)
	return columns
}

func TestListingQueriesUseStudentSchemaColumns(t *testing.T) {
	columns := studentSchemaColumns(t)

	for _, file := range []string{"grade_repository.go", "credit_repository.go"} {
		t.Run(file, func(t *testing.T) {
			source, err := os.ReadFile(file)
			require.NoError(t, err)

			matches := studentAliasRefs.FindAllStringSubmatch(string(source), -1)
			require.NotEmpty(t, matches, "expected joined student columns in %s", file)
			for _, m := range matches {
				assert.True(t, columns[m[1]],
					"%s references s.%s but the students table has no such column", file, m[1])
			}
		})
	}
}

func TestCertificateUpdateRewritesAllMutableColumns(t *testing.T) {
	source, err := os.ReadFile("certificate_repository.go")
	require.NoError(t, err)

	start := strings.Index(string(source), "UPDATE certificates\n")
	require.GreaterOrEqual(t, start, 0)
	statement := string(source)[start:]
	statement = statement[:strings.Index(statement, "WHERE")]

	for _, column := range []string{
		"certificate_name", "certificate_number", "image_url",
		"supporting_document_url", "supporting_document_type",
		"uploader_name", "student_id", "certificate_authority",
	} {
		assert.Contains(t, statement, column+" = $", "update must rewrite %s", column)
	}
}

func TestListingQueriesJoinStudentName(t *testing.T) {
	for _, file := range []string{"grade_repository.go", "credit_repository.go"} {
		source, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(source), "s.student_name AS student_name", file)
	}
}
