package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
)

func TestDomainIndexClampsSelectivity(t *testing.T) {
	require.Equal(t, 0, domainIndex(-1))
	require.Equal(t, 0, domainIndex(0))
	require.Equal(t, domainSize-1, domainIndex(1))
	require.Equal(t, domainSize-1, domainIndex(2))
}

func TestDomainIndexIsMonotonic(t *testing.T) {
	require.Less(t, domainIndex(0.1), domainIndex(0.5))
	require.Less(t, domainIndex(0.5), domainIndex(0.9))
}

func TestGenerateValueExpressionPerDataType(t *testing.T) {
	for _, dt := range []sql.DataType{sql.Int, sql.Long, sql.Float, sql.Double, sql.String} {
		v, err := generateValueExpression(dt, 0.5, false)
		require.NoErrorf(t, err, "%s", dt)
		require.Equal(t, dt, v.Type)
	}
}

func TestGenerateValueExpressionRejectsUnsupportedType(t *testing.T) {
	_, err := generateValueExpression(sql.Null, 0.5, false)
	require.Error(t, err)
}

func TestGenerateValueExpressionTrailingLikeAppendsWildcard(t *testing.T) {
	v, err := generateValueExpression(sql.String, 0.5, true)
	require.NoError(t, err)
	s, ok := v.Val.(string)
	require.True(t, ok)
	require.True(t, s[len(s)-1] == '%')
}

func TestGenerateValueExpressionStringWithoutWildcard(t *testing.T) {
	v, err := generateValueExpression(sql.String, 0.5, false)
	require.NoError(t, err)
	s, ok := v.Val.(string)
	require.True(t, ok)
	require.NotContains(t, s, "%")
}
