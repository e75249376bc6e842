// Package tag defines standard TIFF/EXIF tags
package tag

import "github.com/jpfielding/exif.go/pkg/exif/datatype"

// Directory identifies the IFD a tag lives in. The same numeric id can mean
// different things in different directories (GPS and Interop overlap).
type Directory uint8

const (
	IFD0    Directory = iota // primary image
	Exif                     // pointed to by IFD0 0x8769
	GPS                      // pointed to by IFD0 0x8825
	Interop                  // pointed to by Exif 0xA005
	IFD1                     // thumbnail, linked from IFD0's next offset
)

// Directories lists every directory in canonical encoding order
var Directories = []Directory{IFD0, Exif, Interop, GPS, IFD1}

// IsValid returns true for the five directories a profile can hold
func (d Directory) IsValid() bool {
	return d <= IFD1
}

func (d Directory) String() string {
	switch d {
	case IFD0:
		return "IFD0"
	case Exif:
		return "Exif"
	case GPS:
		return "GPS"
	case Interop:
		return "Interop"
	case IFD1:
		return "IFD1"
	default:
		return "IFD?"
	}
}

// Tag is a numeric tag scoped to the directory that holds it
type Tag struct {
	Directory Directory
	ID        uint16
}

// New creates a new Tag
func New(dir Directory, id uint16) Tag {
	return Tag{Directory: dir, ID: id}
}

// IsPointer returns true for the tags that link sub-directories. They are
// structural and managed by the codec, never stored as entries.
func (t Tag) IsPointer() bool {
	switch t {
	case ExifIFDPointer, GPSIFDPointer, InteropIFDPointer:
		return true
	}
	return false
}

// IsPointerID returns true for the ids reserved for sub-directory pointers,
// whichever directory they turn up in
func IsPointerID(id uint16) bool {
	switch id {
	case ExifIFDPointer.ID, GPSIFDPointer.ID, InteropIFDPointer.ID:
		return true
	}
	return false
}

// IsKnown returns true if the tag has an entry in the dictionary
func (t Tag) IsKnown() bool {
	_, ok := Lookup(t)
	return ok
}

// Cardinality values for Info.Count
const (
	AnyCount = 0 // arrays of any length
	Scalar   = 1
)

// Info describes the declared shape of a known tag
type Info struct {
	Name  string
	Types []datatype.DataType
	Count int // AnyCount, Scalar or a fixed component count
}

// Accepts reports whether a value of type dt with count components fits
// the declaration. ASCII counts are string lengths and are not checked.
func (i Info) Accepts(dt datatype.DataType, count int) bool {
	typeOK := false
	for _, t := range i.Types {
		if t == dt {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return false
	}
	if dt == datatype.ASCII || i.Count == AnyCount {
		return true
	}
	return count == i.Count
}

// IFD0 (and IFD1) tags
var (
	ImageWidth                  = Tag{IFD0, 0x0100}
	ImageLength                 = Tag{IFD0, 0x0101}
	BitsPerSample               = Tag{IFD0, 0x0102}
	Compression                 = Tag{IFD0, 0x0103}
	PhotometricInterpretation   = Tag{IFD0, 0x0106}
	ImageDescription            = Tag{IFD0, 0x010E}
	Make                        = Tag{IFD0, 0x010F}
	Model                       = Tag{IFD0, 0x0110}
	StripOffsets                = Tag{IFD0, 0x0111}
	Orientation                 = Tag{IFD0, 0x0112}
	SamplesPerPixel             = Tag{IFD0, 0x0115}
	RowsPerStrip                = Tag{IFD0, 0x0116}
	StripByteCounts             = Tag{IFD0, 0x0117}
	XResolution                 = Tag{IFD0, 0x011A}
	YResolution                 = Tag{IFD0, 0x011B}
	PlanarConfiguration         = Tag{IFD0, 0x011C}
	ResolutionUnit              = Tag{IFD0, 0x0128}
	TransferFunction            = Tag{IFD0, 0x012D}
	Software                    = Tag{IFD0, 0x0131}
	DateTime                    = Tag{IFD0, 0x0132}
	Artist                      = Tag{IFD0, 0x013B}
	WhitePoint                  = Tag{IFD0, 0x013E}
	PrimaryChromaticities       = Tag{IFD0, 0x013F}
	JPEGInterchangeFormat       = Tag{IFD0, 0x0201}
	JPEGInterchangeFormatLength = Tag{IFD0, 0x0202}
	YCbCrCoefficients           = Tag{IFD0, 0x0211}
	YCbCrSubSampling            = Tag{IFD0, 0x0212}
	YCbCrPositioning            = Tag{IFD0, 0x0213}
	ReferenceBlackWhite         = Tag{IFD0, 0x0214}
	Rating                      = Tag{IFD0, 0x4746}
	RatingPercent               = Tag{IFD0, 0x4749}
	Copyright                   = Tag{IFD0, 0x8298}
	ExifIFDPointer              = Tag{IFD0, 0x8769}
	GPSIFDPointer               = Tag{IFD0, 0x8825}
	XPTitle                     = Tag{IFD0, 0x9C9B}
	XPComment                   = Tag{IFD0, 0x9C9C}
	XPAuthor                    = Tag{IFD0, 0x9C9D}
	XPKeywords                  = Tag{IFD0, 0x9C9E}
	XPSubject                   = Tag{IFD0, 0x9C9F}
)

// Exif sub-IFD tags
var (
	ExposureTime             = Tag{Exif, 0x829A}
	FNumber                  = Tag{Exif, 0x829D}
	ExposureProgram          = Tag{Exif, 0x8822}
	SpectralSensitivity      = Tag{Exif, 0x8824}
	ISOSpeedRatings          = Tag{Exif, 0x8827}
	ExifVersion              = Tag{Exif, 0x9000}
	DateTimeOriginal         = Tag{Exif, 0x9003}
	DateTimeDigitized        = Tag{Exif, 0x9004}
	OffsetTime               = Tag{Exif, 0x9010}
	OffsetTimeOriginal       = Tag{Exif, 0x9011}
	OffsetTimeDigitized      = Tag{Exif, 0x9012}
	ComponentsConfiguration  = Tag{Exif, 0x9101}
	CompressedBitsPerPixel   = Tag{Exif, 0x9102}
	ShutterSpeedValue        = Tag{Exif, 0x9201}
	ApertureValue            = Tag{Exif, 0x9202}
	BrightnessValue          = Tag{Exif, 0x9203}
	ExposureBiasValue        = Tag{Exif, 0x9204}
	MaxApertureValue         = Tag{Exif, 0x9205}
	SubjectDistance          = Tag{Exif, 0x9206}
	MeteringMode             = Tag{Exif, 0x9207}
	LightSource              = Tag{Exif, 0x9208}
	Flash                    = Tag{Exif, 0x9209}
	FocalLength              = Tag{Exif, 0x920A}
	SubjectArea              = Tag{Exif, 0x9214}
	MakerNote                = Tag{Exif, 0x927C}
	UserComment              = Tag{Exif, 0x9286}
	SubsecTime               = Tag{Exif, 0x9290}
	SubsecTimeOriginal       = Tag{Exif, 0x9291}
	SubsecTimeDigitized      = Tag{Exif, 0x9292}
	FlashpixVersion          = Tag{Exif, 0xA000}
	ColorSpace               = Tag{Exif, 0xA001}
	PixelXDimension          = Tag{Exif, 0xA002}
	PixelYDimension          = Tag{Exif, 0xA003}
	RelatedSoundFile         = Tag{Exif, 0xA004}
	InteropIFDPointer        = Tag{Exif, 0xA005}
	FocalPlaneXResolution    = Tag{Exif, 0xA20E}
	FocalPlaneYResolution    = Tag{Exif, 0xA20F}
	FocalPlaneResolutionUnit = Tag{Exif, 0xA210}
	SensingMethod            = Tag{Exif, 0xA217}
	FileSource               = Tag{Exif, 0xA300}
	SceneType                = Tag{Exif, 0xA301}
	CustomRendered           = Tag{Exif, 0xA401}
	ExposureMode             = Tag{Exif, 0xA402}
	WhiteBalance             = Tag{Exif, 0xA403}
	DigitalZoomRatio         = Tag{Exif, 0xA404}
	FocalLengthIn35mmFilm    = Tag{Exif, 0xA405}
	SceneCaptureType         = Tag{Exif, 0xA406}
	GainControl              = Tag{Exif, 0xA407}
	Contrast                 = Tag{Exif, 0xA408}
	Saturation               = Tag{Exif, 0xA409}
	Sharpness                = Tag{Exif, 0xA40A}
	SubjectDistanceRange     = Tag{Exif, 0xA40C}
	ImageUniqueID            = Tag{Exif, 0xA420}
	CameraOwnerName          = Tag{Exif, 0xA430}
	BodySerialNumber         = Tag{Exif, 0xA431}
	LensSpecification        = Tag{Exif, 0xA432}
	LensMake                 = Tag{Exif, 0xA433}
	LensModel                = Tag{Exif, 0xA434}
	LensSerialNumber         = Tag{Exif, 0xA435}
)

// GPS sub-IFD tags
var (
	GPSVersionID        = Tag{GPS, 0x0000}
	GPSLatitudeRef      = Tag{GPS, 0x0001}
	GPSLatitude         = Tag{GPS, 0x0002}
	GPSLongitudeRef     = Tag{GPS, 0x0003}
	GPSLongitude        = Tag{GPS, 0x0004}
	GPSAltitudeRef      = Tag{GPS, 0x0005}
	GPSAltitude         = Tag{GPS, 0x0006}
	GPSTimestamp        = Tag{GPS, 0x0007}
	GPSSatellites       = Tag{GPS, 0x0008}
	GPSStatus           = Tag{GPS, 0x0009}
	GPSMeasureMode      = Tag{GPS, 0x000A}
	GPSDOP              = Tag{GPS, 0x000B}
	GPSSpeedRef         = Tag{GPS, 0x000C}
	GPSSpeed            = Tag{GPS, 0x000D}
	GPSTrackRef         = Tag{GPS, 0x000E}
	GPSTrack            = Tag{GPS, 0x000F}
	GPSImgDirectionRef  = Tag{GPS, 0x0010}
	GPSImgDirection     = Tag{GPS, 0x0011}
	GPSMapDatum         = Tag{GPS, 0x0012}
	GPSProcessingMethod = Tag{GPS, 0x001B}
	GPSDateStamp        = Tag{GPS, 0x001D}
	GPSDifferential     = Tag{GPS, 0x001E}
)

// Interoperability sub-IFD tags
var (
	InteroperabilityIndex   = Tag{Interop, 0x0001}
	InteroperabilityVersion = Tag{Interop, 0x0002}
)

var (
	asciiT     = []datatype.DataType{datatype.ASCII}
	byteT      = []datatype.DataType{datatype.Byte}
	shortT     = []datatype.DataType{datatype.Short}
	longT      = []datatype.DataType{datatype.Long}
	shortLongT = []datatype.DataType{datatype.Short, datatype.Long}
	rationalT  = []datatype.DataType{datatype.Rational}
	sratT      = []datatype.DataType{datatype.SRational}
	undefT     = []datatype.DataType{datatype.Undefined}
)

var dictionary = map[Tag]Info{
	ImageWidth:                  {"ImageWidth", shortLongT, Scalar},
	ImageLength:                 {"ImageLength", shortLongT, Scalar},
	BitsPerSample:               {"BitsPerSample", shortT, AnyCount},
	Compression:                 {"Compression", shortT, Scalar},
	PhotometricInterpretation:   {"PhotometricInterpretation", shortT, Scalar},
	ImageDescription:            {"ImageDescription", asciiT, AnyCount},
	Make:                        {"Make", asciiT, AnyCount},
	Model:                       {"Model", asciiT, AnyCount},
	StripOffsets:                {"StripOffsets", shortLongT, AnyCount},
	Orientation:                 {"Orientation", shortT, Scalar},
	SamplesPerPixel:             {"SamplesPerPixel", shortT, Scalar},
	RowsPerStrip:                {"RowsPerStrip", shortLongT, Scalar},
	StripByteCounts:             {"StripByteCounts", shortLongT, AnyCount},
	XResolution:                 {"XResolution", rationalT, Scalar},
	YResolution:                 {"YResolution", rationalT, Scalar},
	PlanarConfiguration:         {"PlanarConfiguration", shortT, Scalar},
	ResolutionUnit:              {"ResolutionUnit", shortT, Scalar},
	TransferFunction:            {"TransferFunction", shortT, AnyCount},
	Software:                    {"Software", asciiT, AnyCount},
	DateTime:                    {"DateTime", asciiT, AnyCount},
	Artist:                      {"Artist", asciiT, AnyCount},
	WhitePoint:                  {"WhitePoint", rationalT, 2},
	PrimaryChromaticities:       {"PrimaryChromaticities", rationalT, 6},
	JPEGInterchangeFormat:       {"JPEGInterchangeFormat", longT, Scalar},
	JPEGInterchangeFormatLength: {"JPEGInterchangeFormatLength", longT, Scalar},
	YCbCrCoefficients:           {"YCbCrCoefficients", rationalT, 3},
	YCbCrSubSampling:            {"YCbCrSubSampling", shortT, 2},
	YCbCrPositioning:            {"YCbCrPositioning", shortT, Scalar},
	ReferenceBlackWhite:         {"ReferenceBlackWhite", rationalT, 6},
	Rating:                      {"Rating", shortT, Scalar},
	RatingPercent:               {"RatingPercent", shortT, Scalar},
	Copyright:                   {"Copyright", asciiT, AnyCount},
	ExifIFDPointer:              {"ExifIFDPointer", longT, Scalar},
	GPSIFDPointer:               {"GPSIFDPointer", longT, Scalar},
	XPTitle:                     {"XPTitle", byteT, AnyCount},
	XPComment:                   {"XPComment", byteT, AnyCount},
	XPAuthor:                    {"XPAuthor", byteT, AnyCount},
	XPKeywords:                  {"XPKeywords", byteT, AnyCount},
	XPSubject:                   {"XPSubject", byteT, AnyCount},

	ExposureTime:             {"ExposureTime", rationalT, Scalar},
	FNumber:                  {"FNumber", rationalT, Scalar},
	ExposureProgram:          {"ExposureProgram", shortT, Scalar},
	SpectralSensitivity:      {"SpectralSensitivity", asciiT, AnyCount},
	ISOSpeedRatings:          {"ISOSpeedRatings", shortT, AnyCount},
	ExifVersion:              {"ExifVersion", undefT, 4},
	DateTimeOriginal:         {"DateTimeOriginal", asciiT, AnyCount},
	DateTimeDigitized:        {"DateTimeDigitized", asciiT, AnyCount},
	OffsetTime:               {"OffsetTime", asciiT, AnyCount},
	OffsetTimeOriginal:       {"OffsetTimeOriginal", asciiT, AnyCount},
	OffsetTimeDigitized:      {"OffsetTimeDigitized", asciiT, AnyCount},
	ComponentsConfiguration:  {"ComponentsConfiguration", undefT, 4},
	CompressedBitsPerPixel:   {"CompressedBitsPerPixel", rationalT, Scalar},
	ShutterSpeedValue:        {"ShutterSpeedValue", sratT, Scalar},
	ApertureValue:            {"ApertureValue", rationalT, Scalar},
	BrightnessValue:          {"BrightnessValue", sratT, Scalar},
	ExposureBiasValue:        {"ExposureBiasValue", sratT, Scalar},
	MaxApertureValue:         {"MaxApertureValue", rationalT, Scalar},
	SubjectDistance:          {"SubjectDistance", rationalT, Scalar},
	MeteringMode:             {"MeteringMode", shortT, Scalar},
	LightSource:              {"LightSource", shortT, Scalar},
	Flash:                    {"Flash", shortT, Scalar},
	FocalLength:              {"FocalLength", rationalT, Scalar},
	SubjectArea:              {"SubjectArea", shortT, AnyCount},
	MakerNote:                {"MakerNote", undefT, AnyCount},
	UserComment:              {"UserComment", undefT, AnyCount},
	SubsecTime:               {"SubsecTime", asciiT, AnyCount},
	SubsecTimeOriginal:       {"SubsecTimeOriginal", asciiT, AnyCount},
	SubsecTimeDigitized:      {"SubsecTimeDigitized", asciiT, AnyCount},
	FlashpixVersion:          {"FlashpixVersion", undefT, 4},
	ColorSpace:               {"ColorSpace", shortT, Scalar},
	PixelXDimension:          {"PixelXDimension", shortLongT, Scalar},
	PixelYDimension:          {"PixelYDimension", shortLongT, Scalar},
	RelatedSoundFile:         {"RelatedSoundFile", asciiT, AnyCount},
	InteropIFDPointer:        {"InteropIFDPointer", longT, Scalar},
	FocalPlaneXResolution:    {"FocalPlaneXResolution", rationalT, Scalar},
	FocalPlaneYResolution:    {"FocalPlaneYResolution", rationalT, Scalar},
	FocalPlaneResolutionUnit: {"FocalPlaneResolutionUnit", shortT, Scalar},
	SensingMethod:            {"SensingMethod", shortT, Scalar},
	FileSource:               {"FileSource", undefT, Scalar},
	SceneType:                {"SceneType", undefT, Scalar},
	CustomRendered:           {"CustomRendered", shortT, Scalar},
	ExposureMode:             {"ExposureMode", shortT, Scalar},
	WhiteBalance:             {"WhiteBalance", shortT, Scalar},
	DigitalZoomRatio:         {"DigitalZoomRatio", rationalT, Scalar},
	FocalLengthIn35mmFilm:    {"FocalLengthIn35mmFilm", shortT, Scalar},
	SceneCaptureType:         {"SceneCaptureType", shortT, Scalar},
	GainControl:              {"GainControl", shortT, Scalar},
	Contrast:                 {"Contrast", shortT, Scalar},
	Saturation:               {"Saturation", shortT, Scalar},
	Sharpness:                {"Sharpness", shortT, Scalar},
	SubjectDistanceRange:     {"SubjectDistanceRange", shortT, Scalar},
	ImageUniqueID:            {"ImageUniqueID", asciiT, AnyCount},
	CameraOwnerName:          {"CameraOwnerName", asciiT, AnyCount},
	BodySerialNumber:         {"BodySerialNumber", asciiT, AnyCount},
	LensSpecification:        {"LensSpecification", rationalT, 4},
	LensMake:                 {"LensMake", asciiT, AnyCount},
	LensModel:                {"LensModel", asciiT, AnyCount},
	LensSerialNumber:         {"LensSerialNumber", asciiT, AnyCount},

	GPSVersionID:        {"GPSVersionID", byteT, 4},
	GPSLatitudeRef:      {"GPSLatitudeRef", asciiT, AnyCount},
	GPSLatitude:         {"GPSLatitude", rationalT, 3},
	GPSLongitudeRef:     {"GPSLongitudeRef", asciiT, AnyCount},
	GPSLongitude:        {"GPSLongitude", rationalT, 3},
	GPSAltitudeRef:      {"GPSAltitudeRef", byteT, Scalar},
	GPSAltitude:         {"GPSAltitude", rationalT, Scalar},
	GPSTimestamp:        {"GPSTimestamp", rationalT, 3},
	GPSSatellites:       {"GPSSatellites", asciiT, AnyCount},
	GPSStatus:           {"GPSStatus", asciiT, AnyCount},
	GPSMeasureMode:      {"GPSMeasureMode", asciiT, AnyCount},
	GPSDOP:              {"GPSDOP", rationalT, Scalar},
	GPSSpeedRef:         {"GPSSpeedRef", asciiT, AnyCount},
	GPSSpeed:            {"GPSSpeed", rationalT, Scalar},
	GPSTrackRef:         {"GPSTrackRef", asciiT, AnyCount},
	GPSTrack:            {"GPSTrack", rationalT, Scalar},
	GPSImgDirectionRef:  {"GPSImgDirectionRef", asciiT, AnyCount},
	GPSImgDirection:     {"GPSImgDirection", rationalT, Scalar},
	GPSMapDatum:         {"GPSMapDatum", asciiT, AnyCount},
	GPSProcessingMethod: {"GPSProcessingMethod", undefT, AnyCount},
	GPSDateStamp:        {"GPSDateStamp", asciiT, AnyCount},
	GPSDifferential:     {"GPSDifferential", shortT, Scalar},

	InteroperabilityIndex:   {"InteroperabilityIndex", asciiT, AnyCount},
	InteroperabilityVersion: {"InteroperabilityVersion", undefT, 4},
}

// byName is built once from the dictionary for Parse
var byName = func() map[string]Tag {
	m := make(map[string]Tag, len(dictionary))
	for t, info := range dictionary {
		m[info.Name] = t
	}
	return m
}()

// Lookup returns the declaration for a tag. Thumbnail (IFD1) tags share the
// IFD0 definitions.
func Lookup(t Tag) (Info, bool) {
	if info, ok := dictionary[t]; ok {
		return info, true
	}
	if t.Directory == IFD1 {
		info, ok := dictionary[Tag{IFD0, t.ID}]
		return info, ok
	}
	return Info{}, false
}

// Parse resolves a tag by its dictionary name
func Parse(name string) (Tag, bool) {
	t, ok := byName[name]
	return t, ok
}
