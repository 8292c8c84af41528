package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edp1096/xbarsolve/pkg/extract"
)

func TestArray3SetAndAtRoundTrip(t *testing.T) {
	a := extract.NewArray3(2, 3, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				a.Set(i, j, k, float64(i*100+j*10+k))
			}
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				assert.Equal(t, float64(i*100+j*10+k), a.At(i, j, k))
			}
		}
	}
}

func TestToMatrixSqueezesSingleStimulus(t *testing.T) {
	a := extract.NewArray3(2, 2, 1)
	a.Set(0, 0, 0, 1)
	a.Set(0, 1, 0, 2)
	a.Set(1, 0, 0, 3)
	a.Set(1, 1, 0, 4)

	m := a.ToMatrix()
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestToCubePreservesAllStimuli(t *testing.T) {
	a := extract.NewArray3(1, 2, 3)
	for k := 0; k < 3; k++ {
		a.Set(0, 0, k, float64(k))
		a.Set(0, 1, k, float64(10+k))
	}

	cube := a.ToCube()
	assert.Equal(t, []float64{0, 1, 2}, cube[0][0])
	assert.Equal(t, []float64{10, 11, 12}, cube[0][1])
}

func TestOutputMatrixTakesBottomRow(t *testing.T) {
	bitLine := extract.NewArray3(2, 3, 2)
	for j := 0; j < 3; j++ {
		for k := 0; k < 2; k++ {
			bitLine.Set(1, j, k, float64(100+j*10+k))
		}
	}

	out := extract.OutputMatrix(bitLine)
	require := assert.New(t)
	require.Len(out, 2)
	require.Len(out[0], 3)
	for j := 0; j < 3; j++ {
		for k := 0; k < 2; k++ {
			require.Equal(float64(100+j*10+k), out[k][j])
		}
	}
}
