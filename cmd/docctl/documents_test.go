package main

import (
	"testing"

	"docdesk/internal/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldArgs(t *testing.T) {
	fields, err := parseFieldArgs(domains.KindContact, []string{"fullName=Anna Petrova", "email=a=b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domains.ContactFields{FullName: "Anna Petrova", Email: "a=b@example.com"}, fields)

	fields, err = parseFieldArgs(domains.KindLoan, nil)
	require.NoError(t, err)
	assert.Equal(t, domains.LoanFields{}, fields)
}

func TestParseFieldArgsErrors(t *testing.T) {
	_, err := parseFieldArgs(domains.KindContact, []string{"fullName"})
	assert.Error(t, err)

	_, err = parseFieldArgs(domains.KindContact, []string{"amount=100"})
	assert.Error(t, err)
}

func TestReadAssetEmptyPath(t *testing.T) {
	uri, err := readAsset("")
	require.NoError(t, err)
	assert.Empty(t, uri)
}

func TestParseFieldArgsClipsPassport(t *testing.T) {
	fields, err := parseFieldArgs(domains.KindLoan, []string{"passportSeries=12345678", "passportNumber=1234567890"})
	require.NoError(t, err)
	assert.Equal(t, domains.LoanFields{PassportSeries: "1234", PassportNumber: "123456"}, fields)
}
