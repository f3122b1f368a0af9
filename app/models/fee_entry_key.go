package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FeeEntryKeyKind discriminates the three key shapes used in the payments
// collection.
type FeeEntryKeyKind int

const (
	// KeyAcademic identifies "<studentId>-<feeTypeId>" keys.
	KeyAcademic FeeEntryKeyKind = iota
	// KeyVehicle identifies "v-<assignmentId>-<month>" keys.
	KeyVehicle
	// KeyGroupedMaster identifies "manual-<invoiceId>" keys. These reference
	// no fee entry; they mark the synthetic master record of a grouped payment.
	KeyGroupedMaster
)

const (
	vehicleKeyPrefix = "v-"
	groupedKeyPrefix = "manual-"
)

// FeeEntryKey is the parsed form of a fee entry identifier. The string forms
// are part of the durable record format and must not change.
type FeeEntryKey struct {
	Kind FeeEntryKeyKind

	// Academic keys.
	StudentID int
	FeeTypeID int

	// Vehicle keys.
	AssignmentID int
	Month        string

	// Grouped master keys.
	InvoiceID string
}

// AcademicFeeKey builds the key for a (student, fee type) obligation.
func AcademicFeeKey(studentID, feeTypeID int) FeeEntryKey {
	return FeeEntryKey{Kind: KeyAcademic, StudentID: studentID, FeeTypeID: feeTypeID}
}

// VehicleFeeKey builds the key for one month of a vehicle assignment.
func VehicleFeeKey(assignmentID int, month string) FeeEntryKey {
	return FeeEntryKey{Kind: KeyVehicle, AssignmentID: assignmentID, Month: month}
}

// GroupedMasterKey builds the synthetic key for a grouped payment's master
// record.
func GroupedMasterKey(invoiceID string) FeeEntryKey {
	return FeeEntryKey{Kind: KeyGroupedMaster, InvoiceID: invoiceID}
}

// String renders the key in its stored form.
func (k FeeEntryKey) String() string {
	switch k.Kind {
	case KeyVehicle:
		return fmt.Sprintf("%s%d-%s", vehicleKeyPrefix, k.AssignmentID, k.Month)
	case KeyGroupedMaster:
		return groupedKeyPrefix + k.InvoiceID
	default:
		return fmt.Sprintf("%d-%d", k.StudentID, k.FeeTypeID)
	}
}

// ParseFeeEntryKey parses a stored fee entry identifier.
func ParseFeeEntryKey(raw string) (FeeEntryKey, error) {
	switch {
	case strings.HasPrefix(raw, groupedKeyPrefix):
		invoiceID := strings.TrimPrefix(raw, groupedKeyPrefix)
		if invoiceID == "" {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: missing invoice id", raw)
		}
		return GroupedMasterKey(invoiceID), nil

	case strings.HasPrefix(raw, vehicleKeyPrefix):
		parts := strings.Split(strings.TrimPrefix(raw, vehicleKeyPrefix), "-")
		if len(parts) != 2 {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: want v-<assignment>-<month>", raw)
		}
		assignmentID, err := strconv.Atoi(parts[0])
		if err != nil {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: bad assignment id", raw)
		}
		if MonthIndex(parts[1]) < 0 {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: unknown month %q", raw, parts[1])
		}
		return VehicleFeeKey(assignmentID, parts[1]), nil

	default:
		parts := strings.Split(raw, "-")
		if len(parts) != 2 {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: want <student>-<feeType>", raw)
		}
		studentID, err := strconv.Atoi(parts[0])
		if err != nil {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: bad student id", raw)
		}
		feeTypeID, err := strconv.Atoi(parts[1])
		if err != nil {
			return FeeEntryKey{}, fmt.Errorf("fee entry key %q: bad fee type id", raw)
		}
		return AcademicFeeKey(studentID, feeTypeID), nil
	}
}
