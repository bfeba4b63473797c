package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatINRUsesIndianGrouping(t *testing.T) {
	require.Equal(t, "₹1,50,000.00", Format("INR", "150000"))
	require.Equal(t, "₹999.50", Format("INR", "999.5"))
}

func TestFormatBHDUsesFilsPrecision(t *testing.T) {
	require.Equal(t, "BD 1,234.500", Format("BHD", "1234.5"))
	require.Equal(t, "BD 0.105", Format("BHD", "0.105"))
}

func TestFormatCoercesGarbageToZero(t *testing.T) {
	require.Equal(t, "₹0.00", Format("INR", "abc"))
	require.Equal(t, "BD 0.000", Format("BHD", ""))
}
