package components

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	tuitest "github.com/Veraticus/acefi/internal/tui/testing"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pickerBanks = []model.Bank{
	{Code: "057", Name: "Zenith Bank"},
	{Code: "044", Name: "Access Bank"},
	{Code: "058", Name: "GTBank"},
}

func loadedPicker(t *testing.T, banks []model.Bank, err error) (*wizard.BankPicker, BankPickerModel) {
	t.Helper()
	p := wizard.NewBankPicker(common.DiscardLogger())
	req := p.Open(context.Background())
	require.NotNil(t, req)
	require.True(t, p.CompleteFetch(req, banks, err))
	m := NewBankPickerModel(p, themes.Default)
	m.Resize(120, 20)
	return p, m
}

func TestBankPickerModel_Navigate(t *testing.T) {
	_, m := loadedPicker(t, pickerBanks, nil)

	view := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Access Bank", "GTBank", "Zenith Bank"))

	m, _ = m.Update(tuitest.KeyDown())
	m, _ = m.Update(tuitest.KeyDown())
	m, _ = m.Update(tuitest.KeyDown())
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last row")

	m, _ = m.Update(tuitest.KeyUp())
	_, cmd := m.Update(tuitest.KeyEnter())
	assert.Equal(t, []tea.Msg{BankChosenMsg{Code: "058"}}, collect(cmd))
}

func TestBankPickerModel_Search(t *testing.T) {
	p, m := loadedPicker(t, pickerBanks, nil)

	for _, msg := range tuitest.Type("zen") {
		m, _ = m.Update(msg)
	}
	assert.Equal(t, "zen", p.Query())
	assert.Equal(t, 0, m.Cursor())

	_, cmd := m.Update(tuitest.KeyEnter())
	assert.Equal(t, []tea.Msg{BankChosenMsg{Code: "057"}}, collect(cmd))
}

func TestBankPickerModel_EmptyResults(t *testing.T) {
	p, m := loadedPicker(t, pickerBanks, nil)

	for _, msg := range tuitest.Type("zenth") {
		m, _ = m.Update(msg)
	}
	require.Equal(t, wizard.PickerEmpty, p.State())
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, `No banks match "zenth"`)
	assert.Contains(t, view, "Did you mean: Zenith Bank?")

	m, _ = m.Update(tuitest.KeyBackspace())
	m, _ = m.Update(tuitest.KeyBackspace())
	assert.Equal(t, "zen", p.Query())
	assert.Equal(t, wizard.PickerReady, p.State())

	m, _ = m.Update(tuitest.KeyCtrl('u'))
	assert.Equal(t, wizard.PickerReady, p.State())
	assert.Empty(t, p.Query())
}

func TestBankPickerModel_ErrorRetry(t *testing.T) {
	_, m := loadedPicker(t, nil, errors.New("timeout"))

	assert.Contains(t, tuitest.StripANSI(m.View()), "Failed to load banks.")

	_, cmd := m.Update(tuitest.KeyPress("r"))
	assert.Equal(t, []tea.Msg{BankRetryMsg{}}, collect(cmd))

	_, cmd = m.Update(tuitest.KeyEsc())
	assert.Equal(t, []tea.Msg{PickerDismissedMsg{}}, collect(cmd))
}

func TestBankPickerModel_Loading(t *testing.T) {
	p := wizard.NewBankPicker(common.DiscardLogger())
	p.Open(context.Background())
	m := NewBankPickerModel(p, themes.Default)

	assert.Contains(t, tuitest.StripANSI(m.View()), "Loading banks...")
	_, cmd := m.Update(tuitest.KeyEnter())
	assert.Nil(t, cmd)
}
