package tracking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayStatus(t *testing.T) {
	cases := map[string]string{
		"OUT_FOR_DELIVERY": "Out For Delivery",
		"DELIVERED":        "Delivered",
		"IN_TRANSIT":       "In Transit",
		"PICKUP_SCHEDULED": "Pickup Scheduled",
		"":                 "",
	}
	for in, want := range cases {
		require.Equal(t, want, DisplayStatus(in))
	}
}

func TestStatusColorPalette(t *testing.T) {
	require.Equal(t, "green", StatusColor("DELIVERED"))
	require.Equal(t, "amber", StatusColor("OUT_FOR_DELIVERY"))
	require.Equal(t, "blue", StatusColor("IN_TRANSIT"))
	require.Equal(t, "indigo", StatusColor("PICKED_UP"))
	require.Equal(t, "gray", StatusColor("CREATED"))
	require.Equal(t, "gray", StatusColor("PICKUP_SCHEDULED"))
	require.Equal(t, "red", StatusColor("RETURNED"))
	require.Equal(t, "red", StatusColor("LOST"))
	require.Equal(t, "slate", StatusColor("SOMETHING_ELSE"))
	require.Equal(t, "slate", StatusColor(""))
}
