package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	v, err := ValueOf(nil)
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)

	v, err = ValueOf(42)
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)

	v, err = ValueOf("Alice")
	require.NoError(t, err)
	assert.Equal(t, String("Alice"), v)

	v, err = ValueOf([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Bytes{1, 2}, v)

	v, err = ValueOf([]interface{}{1, "two", true})
	require.NoError(t, err)
	assert.Equal(t, List{Int(1), String("two"), Bool(true)}, v)

	v, err = ValueOf(map[string]interface{}{"name": "Alice", "age": 42})
	require.NoError(t, err)
	assert.Equal(t, Map{"name": String("Alice"), "age": Int(42)}, v)

	stamp := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	v, err = ValueOf(stamp)
	require.NoError(t, err)
	dt, ok := v.(DateTime)
	require.True(t, ok)
	assert.Equal(t, stamp.Unix(), dt.Seconds)

	// Values pass through untouched.
	v, err = ValueOf(Int(7))
	require.NoError(t, err)
	assert.Equal(t, Int(7), v)

	_, err = ValueOf(struct{ X int }{})
	require.Error(t, err)

	_, err = ValueOf([]interface{}{make(chan int)})
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Null", KindNull.String())
	assert.Equal(t, "String", KindString.String())
	assert.Equal(t, "DateTimeZoneId", KindDateTimeZoneId.String())

	for k := KindNull; k <= KindDateTimeZoneId; k++ {
		assert.NotEmpty(t, k.String())
	}
}
