package native_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/native"
	"github.com/dmd-tools/d4100ctl/internal/native/mocks"
)

func newBinding(t *testing.T, lib native.Library, opts ...native.Option) *native.Binding {
	t.Helper()
	b, err := native.New(append([]native.Option{native.WithLibrary(lib)}, opts...)...)
	require.NoError(t, err)
	return b
}

func TestBinding_SetMode_TransmitsExactRegisterValues(t *testing.T) {
	tests := []struct {
		name     string
		mode     dmd.UpdateMode
		expected int16
	}{
		{"single transmits 0x00", dmd.Single, 0x00},
		{"dual transmits 0x10", dmd.Dual, 0x10},
		{"quad transmits 0x30", dmd.Quad, 0x30},
		{"global transmits 0x20", dmd.Global, 0x20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lib := mocks.NewMockLibrary(ctrl)
			lib.EXPECT().SetSWOverrideValue(tt.expected, int16(0)).Return(int16(1))

			b := newBinding(t, lib)
			require.NoError(t, b.SetMode(tt.mode))
		})
	}
}

func TestBinding_SetMode_RejectedCarriesAttemptedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().SetSWOverrideValue(int16(0x30), int16(0)).Return(int16(0))

	b := newBinding(t, lib)
	err := b.SetMode(dmd.Quad)

	var valueErr *dmd.OverrideValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, int16(0x30), valueErr.Value)
}

func TestBinding_SetMode_NoSyntheticOverrideGuard(t *testing.T) {
	// The protocol has no "override must be enabled" check and the layer
	// does not add one: by default SetMode never reads the enable register,
	// it just transmits and reports whatever the library answers. The mock
	// fails the test if GetSWOverrideEnable is touched.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().SetSWOverrideValue(int16(0x10), int16(0)).Return(int16(1))

	b := newBinding(t, lib)
	require.NoError(t, b.SetMode(dmd.Dual))
}

func TestBinding_SetMode_EnsureOverrideEnablesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	gomock.InOrder(
		lib.EXPECT().GetSWOverrideEnable(int16(0)).Return(int16(0)),
		lib.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(1)),
		lib.EXPECT().SetSWOverrideValue(int16(0x20), int16(0)).Return(int16(1)),
	)

	b := newBinding(t, lib, native.WithEnsureOverride(true))
	require.NoError(t, b.SetMode(dmd.Global))
}

func TestBinding_SetMode_EnsureOverrideSkipsWhenAlreadyOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().GetSWOverrideEnable(int16(0)).Return(int16(1))
	lib.EXPECT().SetSWOverrideValue(int16(0x00), int16(0)).Return(int16(1))

	b := newBinding(t, lib, native.WithEnsureOverride(true))
	require.NoError(t, b.SetMode(dmd.Single))
}

func TestBinding_EnableDisableOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	gomock.InOrder(
		lib.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(1)),
		lib.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(1)),
	)

	b := newBinding(t, lib)
	require.NoError(t, b.EnableOverride())
	require.NoError(t, b.DisableOverride())
}

func TestBinding_EnableOverride_RejectedDistinguishesDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0))
	lib.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(0))

	b := newBinding(t, lib)

	err := b.EnableOverride()
	var enableErr *dmd.OverrideEnableError
	require.ErrorAs(t, err, &enableErr)
	assert.Equal(t, int16(1), enableErr.Value)
	assert.Contains(t, err.Error(), "enable")

	err = b.DisableOverride()
	require.ErrorAs(t, err, &enableErr)
	assert.Equal(t, int16(0), enableErr.Value)
	assert.Contains(t, err.Error(), "disable")
}

func TestBinding_ConventionIsExplicitConfiguration(t *testing.T) {
	// Some library builds report success as 0. The same wire code must flip
	// meaning with the configured convention, not with guesswork.
	tests := []struct {
		name       string
		convention dmd.Convention
		code       int16
		wantErr    bool
	}{
		{"code 1 succeeds under the stock convention", dmd.SuccessIsOne, 1, false},
		{"code 0 fails under the stock convention", dmd.SuccessIsOne, 0, true},
		{"code 0 succeeds under the inverted convention", dmd.SuccessIsZero, 0, false},
		{"code 1 fails under the inverted convention", dmd.SuccessIsZero, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lib := mocks.NewMockLibrary(ctrl)
			lib.EXPECT().SetSWOverrideValue(int16(0x10), int16(0)).Return(tt.code)

			b := newBinding(t, lib, native.WithConvention(tt.convention))
			err := b.SetMode(dmd.Dual)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBinding_OverrideValue_RoundTripAfterQuad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	gomock.InOrder(
		lib.EXPECT().SetSWOverrideValue(int16(0x30), int16(0)).Return(int16(1)),
		lib.EXPECT().GetSWOverrideValue().Return(int16(0x30)).Times(2),
		lib.EXPECT().SetSWOverrideValue(int16(0x20), int16(0)).Return(int16(1)),
		lib.EXPECT().GetSWOverrideValue().Return(int16(0x20)),
	)

	b := newBinding(t, lib)
	require.NoError(t, b.SetMode(dmd.Quad))
	assert.Equal(t, int16(0x30), b.OverrideValue())
	assert.Equal(t, int16(0x30), b.OverrideValue(), "value holds until the next SetMode")

	require.NoError(t, b.SetMode(dmd.Global))
	assert.Equal(t, int16(0x20), b.OverrideValue())
}

func TestBinding_LoadData_QueriesChipTypePerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := []byte{0xAA, 0xBB}
	lib := mocks.NewMockLibrary(ctrl)
	// Hot-swappable hardware: the chip type is read on every load, never
	// cached across calls.
	lib.EXPECT().GetDMDTYPE(int16(0)).Return(int16(dmd.DLP7000)).Times(2)
	lib.EXPECT().LoadData(data, int16(dmd.DLP7000), int16(0)).Return(int16(1)).Times(2)

	b := newBinding(t, lib)
	require.NoError(t, b.LoadData(data))
	require.NoError(t, b.LoadData(data))
}

func TestBinding_LoadData_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().GetDMDTYPE(int16(0)).Return(int16(dmd.DLP9500))
	lib.EXPECT().LoadData(gomock.Any(), int16(dmd.DLP9500), int16(0)).Return(int16(0))

	b := newBinding(t, lib)
	var uploadErr *dmd.BufferUploadError
	require.ErrorAs(t, b.LoadData([]byte{1}), &uploadErr)
}

func TestBinding_Scenario_EnableDualDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	gomock.InOrder(
		lib.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(1)),
		lib.EXPECT().SetSWOverrideValue(int16(0x10), int16(0)).Return(int16(1)),
		lib.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(1)),
	)

	b := newBinding(t, lib)
	require.NoError(t, b.EnableOverride())
	require.NoError(t, b.SetMode(dmd.Dual))
	require.NoError(t, b.DisableOverride())
}

func TestBinding_Close_AlwaysAttemptsDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(1))

	b := newBinding(t, lib)
	require.NoError(t, b.Close())
}

func TestBinding_Close_ReportsDisableFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(0))

	b := newBinding(t, lib)
	err := b.Close()
	var enableErr *dmd.OverrideEnableError
	require.ErrorAs(t, err, &enableErr)
	assert.Equal(t, int16(0), enableErr.Value)
}
