package managed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/managed"
	"github.com/dmd-tools/d4100ctl/internal/managed/mocks"
)

func TestBinding_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().ConnectDevice(int16(0), "fpga.bin").Return(int16(0), nil)
	ctl.EXPECT().IsDeviceAttached().Return(true)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.Connect(0, "fpga.bin"))
	assert.True(t, b.Attached())
}

func TestBinding_Connect_InvalidIndexLeavesNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().ConnectDevice(int16(9), "fpga.bin").Return(int16(-1), errors.New("no board at index 9"))

	b := managed.New(managed.WithControl(ctl))
	err := b.Connect(9, "fpga.bin")

	var connErr *dmd.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, int16(9), connErr.Index)

	// Attached never consults the control while no connect has succeeded.
	assert.False(t, b.Attached())
}

func TestBinding_Connect_RejectedCodeIsAConnectionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().ConnectDevice(int16(0), "wrong.bin").Return(int16(2), nil)

	b := managed.New(managed.WithControl(ctl))
	var connErr *dmd.ConnectionError
	require.ErrorAs(t, b.Connect(0, "wrong.bin"), &connErr)
	assert.False(t, b.Attached())
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

			ctl := mocks.NewMockControl(ctrl)
			ctl.EXPECT().SetSWOverrideValue(tt.expected).Return(int16(0), nil)

			b := managed.New(managed.WithControl(ctl))
			require.NoError(t, b.SetMode(tt.mode))
		})
	}
}

func TestBinding_ConventionOppositeOfNative(t *testing.T) {
	// The managed control reports 0 on success. The exact same wire code
	// must fail when a deployment configures the one-based convention.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().SetSWOverrideValue(int16(0x30)).Return(int16(0), nil).Times(2)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.SetMode(dmd.Quad))

	inverted := managed.New(managed.WithControl(ctl), managed.WithConvention(dmd.SuccessIsOne))
	var valueErr *dmd.OverrideValueError
	require.ErrorAs(t, inverted.SetMode(dmd.Quad), &valueErr)
	assert.Equal(t, int16(0x30), valueErr.Value)
}

func TestBinding_EnableDisable_TracksOverrideState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(0), nil),
	)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.EnableOverride())
	assert.True(t, b.OverrideActive())
	require.NoError(t, b.DisableOverride())
	assert.False(t, b.OverrideActive(), "enable followed by disable leaves override off")
}

func TestBinding_SetMode_EnsureOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideValue(int16(0x10)).Return(int16(0), nil),
		// Override already on, second SetMode goes straight to the register.
		ctl.EXPECT().SetSWOverrideValue(int16(0x20)).Return(int16(0), nil),
	)

	b := managed.New(managed.WithControl(ctl), managed.WithEnsureOverride(true))
	require.NoError(t, b.SetMode(dmd.Dual))
	require.NoError(t, b.SetMode(dmd.Global))
}

func TestBinding_OverrideValue_RoundTripAfterQuad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideValue(int16(0x30)).Return(int16(0), nil),
		ctl.EXPECT().GetSWOverrideValue().Return(int16(0x30), nil),
	)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.SetMode(dmd.Quad))

	value, err := b.OverrideValue()
	require.NoError(t, err)
	assert.Equal(t, int16(0x30), value)
}

func TestBinding_ChipType(t *testing.T) {
	tests := []struct {
		name     string
		code     int16
		expected dmd.DMDType
	}{
		{"DLP9500", 0, dmd.DLP9500},
		{"DLP7000", 1, dmd.DLP7000},
		{"DLP650NIR", 7, dmd.DLP650NIR},
		{"unknown code maps to unrecognized", 9, dmd.Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctl := mocks.NewMockControl(ctrl)
			ctl.EXPECT().GetDMDTYPE().Return(tt.code, nil)

			b := managed.New(managed.WithControl(ctl))
			chip, err := b.ChipType()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chip)
		})
	}
}

func TestBinding_SpeedOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().GetSpeedMode().Return(int16(1), nil)
	ctl.EXPECT().GetSpeedMode().Return(int16(0), nil)

	b := managed.New(managed.WithControl(ctl))

	ok, err := b.SpeedOK()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.SpeedOK()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBinding_LoadBufferToDMD_DefaultsToAllBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().LoadToDMD(int16(dmd.AllBlocks), false, false).Return(int16(0), nil)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.LoadBufferToDMD(0, false, false))
}

func TestBinding_LoadBufferToDMD_RepeatedTransfersEachReachHardware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().LoadToDMD(int16(3), true, true).Return(int16(0), nil).Times(2)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.LoadBufferToDMD(3, true, true))
	require.NoError(t, b.LoadBufferToDMD(3, true, true))
}

func TestBinding_ResetAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().Reset(int16(5)).Return(int16(0), nil)
	ctl.EXPECT().Clear(int16(dmd.AllBlocks), true).Return(int16(0), nil)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.Reset(5))
	require.NoError(t, b.Clear(0, true))
}

func TestBinding_Reset_FailureIsABufferUploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().Reset(int16(dmd.AllBlocks)).Return(int16(1), nil)

	b := managed.New(managed.WithControl(ctl))
	var uploadErr *dmd.BufferUploadError
	require.ErrorAs(t, b.Reset(dmd.AllBlocks), &uploadErr)
	assert.Empty(t, uploadErr.Path)
}

func TestBinding_Float(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().FloatMirrors().Return(int16(0), nil)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.Float())
}

func TestBinding_Scenario_EnableDualDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideValue(int16(0x10)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(0), nil),
	)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.EnableOverride())
	require.NoError(t, b.SetMode(dmd.Dual))
	require.NoError(t, b.DisableOverride())
	assert.False(t, b.OverrideActive())
}

func TestBinding_Close_DisablesOverrideWhenSessionWasUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(0), nil),
		ctl.EXPECT().Close().Return(nil),
	)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.EnableOverride())
	require.NoError(t, b.Close())
}

func TestBinding_Close_FreshBindingOnlyReleasesHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	ctl.EXPECT().Close().Return(nil)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.Close())
}

func TestBinding_Close_TeardownFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctl := mocks.NewMockControl(ctrl)
	gomock.InOrder(
		ctl.EXPECT().SetSWOverrideEnable(int16(1)).Return(int16(0), nil),
		ctl.EXPECT().SetSWOverrideEnable(int16(0)).Return(int16(1), nil),
		ctl.EXPECT().Close().Return(nil),
	)

	b := managed.New(managed.WithControl(ctl))
	require.NoError(t, b.EnableOverride())

	err := b.Close()
	var enableErr *dmd.OverrideEnableError
	require.ErrorAs(t, err, &enableErr)
	assert.Equal(t, int16(0), enableErr.Value)
}
