package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_OkCarriesNoError(t *testing.T) {
	r := Ok([]string{"a"})
	assert.True(t, r.OK())
	assert.NoError(t, r.Err())
	assert.Equal(t, []string{"a"}, r.Data())
}

func TestResult_FailCarriesNoData(t *testing.T) {
	r := Fail[*WeightRecord](ErrUnauthenticated)
	assert.False(t, r.OK())
	assert.Nil(t, r.Data())

	data, err := r.Unwrap()
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResult_FailWithNilStillFails(t *testing.T) {
	assert.Error(t, Fail[int](nil).Err())
}

func TestResult_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Ok(map[string]int{"n": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"n":1},"error":null}`, string(b))

	b, err = json.Marshal(Ok[*UserProfile](nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null,"error":null}`, string(b))

	b, err = json.Marshal(Fail[[]WeightRecord](fmt.Errorf("%w: weight must be positive", ErrInvalidInput)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null,"error":{"code":"invalid_input","message":"invalid input: weight must be positive"}}`, string(b))

	b, err = json.Marshal(Fail[int](&RemoteError{Code: "1062", Message: "Duplicate entry"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null,"error":{"code":"1062","message":"Duplicate entry"}}`, string(b))
}

func TestErrorBodyOf(t *testing.T) {
	assert.Nil(t, ErrorBodyOf(nil))
	assert.Equal(t, "unauthenticated", ErrorBodyOf(ErrUnauthenticated).Code)
	assert.Equal(t, "remote_error", ErrorBodyOf(&RemoteError{Message: "x"}).Code)
	assert.Equal(t, "internal", ErrorBodyOf(fmt.Errorf("other")).Code)
}

func TestRestrictions_ScanAndValue(t *testing.T) {
	var r Restrictions
	require.NoError(t, r.Scan([]byte(`["gluten"]`)))
	assert.Equal(t, Restrictions{"gluten"}, r)

	require.NoError(t, r.Scan(nil))
	assert.Equal(t, Restrictions{}, r)

	require.NoError(t, r.Scan("null"))
	assert.Equal(t, Restrictions{}, r)

	assert.Error(t, r.Scan(42))
	assert.Error(t, r.Scan("{not json"))

	v, err := Restrictions(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestUnitsAndThemesValid(t *testing.T) {
	assert.True(t, Pounds.Valid())
	assert.False(t, WeightUnit("st").Valid())
	assert.True(t, Light.Valid())
	assert.False(t, Theme("sepia").Valid())
}
