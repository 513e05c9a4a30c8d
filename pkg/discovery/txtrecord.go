package discovery

import (
	"fmt"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// getProperty looks up a TXT key, falling back to a case-insensitive scan.
// Accessories in the wild disagree on key casing ("c#" vs "C#").
func getProperty(txt TXTRecordMap, key string) (string, bool) {
	if v, ok := txt[key]; ok {
		return v, true
	}
	for k, v := range txt {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// IsHAPAccessory reports whether a TXT record set identifies a HAP accessory.
// The id, c# and md keys are required; a responder missing any of them is
// some other _hap._tcp service and is skipped during browsing.
func IsHAPAccessory(txt TXTRecordMap) bool {
	for _, key := range []string{TXTKeyDeviceID, TXTKeyConfigNumber, TXTKeyModel} {
		if _, ok := getProperty(txt, key); !ok {
			return false
		}
	}
	return true
}

// EncodeAccessoryTXT creates TXT records for accessory advertising.
func EncodeAccessoryTXT(info *AccessoryInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyDeviceID] = info.DeviceID
	txt[TXTKeyConfigNumber] = strconv.FormatUint(uint64(info.ConfigNumber), 10)
	txt[TXTKeyModel] = info.Model

	// sf is always written: controllers read it to decide whether the
	// accessory is available for pairing, and absence is ambiguous.
	txt[TXTKeyStatusFlags] = strconv.FormatUint(uint64(info.StatusFlags), 10)

	// Optional fields
	if info.StateNumber > 0 {
		txt[TXTKeyStateNumber] = strconv.FormatUint(uint64(info.StateNumber), 10)
	}
	if info.ProtocolVersion != "" {
		txt[TXTKeyProtocolVersion] = info.ProtocolVersion
	}
	if info.Category != 0 {
		txt[TXTKeyCategory] = strconv.FormatUint(uint64(info.Category), 10)
	}
	if info.FeatureFlags != 0 {
		txt[TXTKeyFeatureFlags] = strconv.FormatUint(uint64(info.FeatureFlags), 10)
	}

	return txt
}

// DecodeAccessoryTXT parses the TXT records of a HAP accessory announcement.
//
// The id, c# and md keys are required. Optional keys are parsed leniently:
// malformed numeric values are ignored rather than rejected, and a missing
// pv defaults to "1.0". The device id is preserved verbatim; use
// NormalizeDeviceID before comparing.
func DecodeAccessoryTXT(txt TXTRecordMap) (*AccessoryInfo, error) {
	info := &AccessoryInfo{}

	// Parse device id (required)
	id, ok := getProperty(txt, TXTKeyDeviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyDeviceID)
	}
	info.DeviceID = id

	// Parse configuration number (required)
	cnStr, ok := getProperty(txt, TXTKeyConfigNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyConfigNumber)
	}
	cn, err := strconv.ParseUint(cnStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyConfigNumber, cnStr)
	}
	info.ConfigNumber = uint32(cn)

	// Parse model (required)
	info.Model, ok = getProperty(txt, TXTKeyModel)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyModel)
	}

	// Optional fields
	if snStr, ok := getProperty(txt, TXTKeyStateNumber); ok {
		if sn, err := strconv.ParseUint(snStr, 10, 32); err == nil {
			info.StateNumber = uint32(sn)
		}
	}

	info.ProtocolVersion = DefaultProtocolVersion
	if pv, ok := getProperty(txt, TXTKeyProtocolVersion); ok && pv != "" {
		info.ProtocolVersion = pv
	}

	if ciStr, ok := getProperty(txt, TXTKeyCategory); ok {
		if ci, err := strconv.ParseUint(ciStr, 10, 8); err == nil {
			info.Category = Category(ci)
		}
	}

	if sfStr, ok := getProperty(txt, TXTKeyStatusFlags); ok {
		if sf, err := strconv.ParseUint(sfStr, 10, 8); err == nil {
			info.StatusFlags = StatusFlags(sf)
		}
	}

	if ffStr, ok := getProperty(txt, TXTKeyFeatureFlags); ok {
		if ff, err := strconv.ParseUint(ffStr, 10, 8); err == nil {
			info.FeatureFlags = FeatureFlags(ff)
		}
	}

	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInstanceNameTooLong)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
