package snapshot_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema/field"
	"github.com/syssam/strata/schema/rel"
	"github.com/syssam/strata/snapshot"
)

type Person struct{ strata.Schema }

func (Person) Fields() []strata.Field {
	return []strata.Field{
		field.Text("name").NotNull().Default("anon").Comment("display name"),
		field.Integer("age").Default(0),
		field.DateTime("seen_at").Default(time.Now),
	}
}

type Post struct{ strata.Schema }

func (Post) Fields() []strata.Field {
	return []strata.Field{
		field.Text("title"),
	}
}

func (Post) Relations() []strata.Relation {
	return []strata.Relation{
		rel.ManyToOne("author", Person.Type),
	}
}

func TestMarshalType(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	person := reg.MustResolve(Person{})

	buf, err := snapshot.MarshalType(person)
	require.NoError(t, err)

	var s snapshot.Schema
	require.NoError(t, json.Unmarshal(buf, &s))
	assert.Equal(t, "Person", s.Name)
	assert.Equal(t, "person", s.Label)
	assert.Equal(t, "people", s.Table)
	require.Len(t, s.Fields, 4)

	byName := make(map[string]*snapshot.Field, len(s.Fields))
	for _, f := range s.Fields {
		byName[f.Name] = f
	}

	name := byName["name"]
	require.NotNil(t, name)
	assert.Equal(t, "text", name.Kind)
	assert.Equal(t, "anon", name.Default)
	assert.False(t, name.AllowNull)
	assert.Equal(t, "display name", name.Comment)

	// Function defaults cannot be encoded and are omitted.
	seen := byName["seen_at"]
	require.NotNil(t, seen)
	assert.Equal(t, "datetime", seen.Kind)
	assert.Nil(t, seen.Default)

	id := byName["id"]
	require.NotNil(t, id)
	assert.Equal(t, "integer", id.Kind)
	assert.True(t, id.Unique)
}

func TestMarshalTypeRelations(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	post := reg.MustResolve(Post{})

	buf, err := snapshot.MarshalType(post)
	require.NoError(t, err)

	var s snapshot.Schema
	require.NoError(t, json.Unmarshal(buf, &s))

	var author *snapshot.Field
	for _, f := range s.Fields {
		if f.Name == "author" {
			author = f
		}
	}
	require.NotNil(t, author)
	assert.Equal(t, "many_to_one", author.Kind)
	assert.Equal(t, "Person", author.Target)
	assert.Equal(t, "Post", author.Source)
	assert.True(t, author.Unique)
}

func TestMarshalTypeYAML(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	person := reg.MustResolve(Person{})

	buf, err := snapshot.MarshalTypeYAML(person)
	require.NoError(t, err)

	var s snapshot.Schema
	require.NoError(t, yaml.Unmarshal(buf, &s))
	assert.Equal(t, "Person", s.Name)
	assert.Len(t, s.Fields, 4)
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	person := reg.MustResolve(Person{})

	p, err := person.New(strata.Set("name", "Ann"), strata.Set("age", 30))
	require.NoError(t, err)

	buf, err := snapshot.MarshalRecord(p)
	require.NoError(t, err)

	got, err := snapshot.UnmarshalRecord(person, buf)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.MustGet("name"))
	assert.EqualValues(t, 30, got.MustGet("age"))
	assert.Nil(t, got.ID())

	seen, ok := got.MustGet("seen_at").(time.Time)
	require.True(t, ok)
	want := p.MustGet("seen_at").(time.Time)
	assert.True(t, seen.Equal(want))
}

// Decoding re-runs the full construction path, so constraints are
// re-validated.
func TestRecordRevalidates(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	person := reg.MustResolve(Person{})
	before := person.Count()

	p, err := person.New()
	require.NoError(t, err)
	buf, err := snapshot.MarshalRecord(p)
	require.NoError(t, err)
	_, err = snapshot.UnmarshalRecord(person, buf)
	require.NoError(t, err)

	assert.Equal(t, before+2, person.Count())
}

func TestRecordSkipsRelations(t *testing.T) {
	t.Parallel()

	reg := strata.NewRegistry()
	person := reg.MustResolve(Person{})
	post := reg.MustResolve(Post{})

	ann, err := person.New(strata.Set("name", "Ann"))
	require.NoError(t, err)
	pp, err := post.New(strata.Set("title", "hi"), strata.Set("author", ann))
	require.NoError(t, err)

	buf, err := snapshot.MarshalRecord(pp)
	require.NoError(t, err)

	got, err := snapshot.UnmarshalRecord(post, buf)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.MustGet("title"))
	// Relation references are in-memory only; the decoded record takes
	// the declared default instead.
	assert.Nil(t, got.MustGet("author"))
	assert.True(t, got.UsedDefault("author"))
}
