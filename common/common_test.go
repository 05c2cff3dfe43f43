package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestByteOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		num  uint64
		be   []byte
		le   []byte
	}{
		{
			name: "zero",
			num:  0,
			be:   []byte{0, 0, 0, 0, 0, 0, 0, 0},
			le:   []byte{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "two",
			num:  2,
			be:   []byte{0, 0, 0, 0, 0, 0, 0, 2},
			le:   []byte{2, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "mixed",
			num:  0x0102030405060708,
			be:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
			le:   []byte{8, 7, 6, 5, 4, 3, 2, 1},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.be, Uint64ToBytes(tt.num))
			require.Equal(t, tt.le, Uint64ToLEBytes(tt.num))
			require.Equal(t, tt.num, BytesToUint64(tt.be))
			require.Equal(t, tt.num, LEBytesToUint64(tt.le))
		})
	}
}

func TestUint32ToBytes(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0x80, 0x03}, Uint32ToBytes(0x8003))
	require.Equal(t, uint32(0x8003), BytesToUint32([]byte{0, 0, 0x80, 0x03}))
}

func TestAddressToHash(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000010001")
	h := AddressToHash(addr)
	require.Equal(t, common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000010001"), h)
	require.Equal(t, make([]byte, AddressPadding), h[:AddressPadding])
}

func TestMaxHash(t *testing.T) {
	require.Equal(t,
		common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		MaxHash(),
	)
}

func TestBlake2s256(t *testing.T) {
	// BLAKE2s-256 of the empty string
	require.Equal(t,
		common.HexToHash("0x69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"),
		Blake2s256(),
	)

	a := common.HexToHash("0x01")
	b := common.HexToHash("0x02")
	require.Equal(t, Blake2s256(a[:], b[:]), HashPair(a, b))
	require.NotEqual(t, HashPair(a, b), HashPair(b, a))
}
