package wire

// Format identifies the value type a characteristic carries on the
// wire. Vendor documents may carry formats outside this set; they are
// preserved verbatim.
type Format string

const (
	// FormatBool is a boolean value.
	FormatBool Format = "bool"

	// FormatUint8 is an unsigned 8-bit integer.
	FormatUint8 Format = "uint8"

	// FormatUint16 is an unsigned 16-bit integer.
	FormatUint16 Format = "uint16"

	// FormatUint32 is an unsigned 32-bit integer.
	FormatUint32 Format = "uint32"

	// FormatUint64 is an unsigned 64-bit integer.
	FormatUint64 Format = "uint64"

	// FormatInt is a signed 32-bit integer.
	FormatInt Format = "int"

	// FormatFloat is a 64-bit floating point number.
	FormatFloat Format = "float"

	// FormatString is a UTF-8 string.
	FormatString Format = "string"

	// FormatTLV8 is a base64-encoded TLV8 blob.
	FormatTLV8 Format = "tlv8"

	// FormatData is a base64-encoded opaque blob.
	FormatData Format = "data"
)

// IsValid reports whether the format is one of the defined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatBool, FormatUint8, FormatUint16, FormatUint32, FormatUint64,
		FormatInt, FormatFloat, FormatString, FormatTLV8, FormatData:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the format carries whole numbers.
func (f Format) IsInteger() bool {
	switch f {
	case FormatUint8, FormatUint16, FormatUint32, FormatUint64, FormatInt:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the format carries numbers, whole or not.
func (f Format) IsNumeric() bool {
	return f.IsInteger() || f == FormatFloat
}

// Permission is a single entry of a characteristic's perms array.
type Permission string

const (
	// PermissionRead allows paired reads.
	PermissionRead Permission = "pr"

	// PermissionWrite allows paired writes.
	PermissionWrite Permission = "pw"

	// PermissionEvents allows event notifications.
	PermissionEvents Permission = "ev"

	// PermissionAdditionalAuth requires additional authorization data
	// on writes.
	PermissionAdditionalAuth Permission = "aa"

	// PermissionTimedWrite requires writes to arrive as timed writes.
	PermissionTimedWrite Permission = "tw"

	// PermissionHidden hides the characteristic from users.
	PermissionHidden Permission = "hd"
)

// IsValid reports whether the permission is one of the defined
// permission strings.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionEvents,
		PermissionAdditionalAuth, PermissionTimedWrite, PermissionHidden:
		return true
	default:
		return false
	}
}

// Readable reports whether perms allows paired reads.
func Readable(perms []Permission) bool {
	return hasPermission(perms, PermissionRead)
}

// Writable reports whether perms allows paired writes.
func Writable(perms []Permission) bool {
	return hasPermission(perms, PermissionWrite)
}

func hasPermission(perms []Permission, want Permission) bool {
	for _, p := range perms {
		if p == want {
			return true
		}
	}
	return false
}
