package extractors

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

var (
	vehicleDetailHeadRe = regexp.MustCompile(`(?im)^[ \t]*(?:(?:Details|Description)\s+of\s+vehicle|Vehicle\s+description)\b`)
	vehicleRegHeadRe    = regexp.MustCompile(`(?im)^[ \t]*Registration\s+(?:number|no\.?)\b`)

	registrationRe = regexp.MustCompile(`(?i)Registration\s+(?:number|no\.?)\s*:?\s*([A-Z]{2,3}\s?\d{3,4}\s?[A-Z]{2,3}|[A-Z0-9\-]{5,10}|TBA|N/A|N-A)`)
	vinRe          = regexp.MustCompile(`(?i)(?:VIN|Chassis)\s*(?:number|no\.?)?\s*:?\s*([A-HJ-NPR-Z0-9]{17})`)
	engineRe       = regexp.MustCompile(`(?i)Engine\s+(?:number|no\.?)\s*:?\s*([A-Z0-9]{6,20})`)
	vehicleDescRe  = regexp.MustCompile(`(?i)(?:(?:Details|Description)\s+of\s+vehicle|Vehicle\s+description)\s*:?\s*([^\n]+)`)
	descOfUseRe    = regexp.MustCompile(`(?i)Description\s+of\s+use\s*:?\s*([^\n]+)`)
	sasriaRe       = regexp.MustCompile(`(?i)Sasria\s*(?:premium)?\s*:?\s*` + amountPattern)
	extrasRe       = regexp.MustCompile(`(?i)(?:Extras|Accessories)\s*:?\s*([^\n]+)`)

	// yearMakeRe splits "2021 MERCEDES-BENZ ACTROS 2645LS/33" into its year
	// and the make/model remainder.
	yearMakeRe = regexp.MustCompile(`^(?:\d+\s*[xX]\s+)?((?:19|20)\d{2})\s+(.+)$`)
)

// vehicleMakes are the manufacturer names recognized at the front of a
// vehicle description. Multi-word names are listed before their prefixes.
var vehicleMakes = []string{
	"MERCEDES-BENZ", "MERCEDES BENZ", "MERCEDES", "VOLKSWAGEN", "VW",
	"TOYOTA", "ISUZU", "FORD", "NISSAN", "SCANIA", "VOLVO", "MAN", "DAF",
	"FREIGHTLINER", "IVECO", "HINO", "FUSO", "UD", "MAZDA", "MITSUBISHI",
	"HYUNDAI", "KIA", "RENAULT", "PEUGEOT", "BMW", "AUDI", "LAND ROVER",
	"LANDROVER", "CHEVROLET", "OPEL", "DATSUN", "TATA", "POWERSTAR",
	"JOHN DEERE", "CASE", "BELL", "CAT", "KOMATSU",
}

var coverTypes = []struct {
	keyword string
	cover   string
}{
	{"comprehensive", models.CoverComprehensive},
	{"third party fire and theft", models.CoverThirdPartyFireTheft},
	{"third party, fire and theft", models.CoverThirdPartyFireTheft},
	{"third party only", models.CoverThirdPartyOnly},
	{"third party", models.CoverThirdPartyOnly},
}

// extractMotor reads a motor-specified section. Each vehicle is printed as a
// labeled block opening with its description or registration line.
func extractMotor(section *models.Section, text string) {
	for _, block := range vehicleBlocks(text) {
		vehicle := parseVehicleBlock(block)
		if vehicle == nil {
			continue
		}
		section.Vehicles = append(section.Vehicles, *vehicle)
	}
}

// vehicleBlocks slices the section into one block per vehicle. A block opens
// at every vehicle-description line; a registration line opens a new block
// only when the current block already carries one, so the registration
// printed under a description stays with that vehicle.
func vehicleBlocks(text string) []string {
	type head struct {
		pos   int
		isReg bool
	}
	var heads []head
	for _, loc := range vehicleDetailHeadRe.FindAllStringIndex(text, -1) {
		heads = append(heads, head{pos: loc[0]})
	}
	for _, loc := range vehicleRegHeadRe.FindAllStringIndex(text, -1) {
		heads = append(heads, head{pos: loc[0], isReg: true})
	}
	if len(heads) == 0 {
		return []string{text}
	}
	sort.Slice(heads, func(i, j int) bool { return heads[i].pos < heads[j].pos })

	var blocks []string
	start := -1
	hasReg := false
	for _, h := range heads {
		if start < 0 {
			start, hasReg = h.pos, h.isReg
			continue
		}
		if h.isReg && !hasReg {
			hasReg = true
			continue
		}
		blocks = append(blocks, text[start:h.pos])
		start, hasReg = h.pos, h.isReg
	}
	blocks = append(blocks, text[start:])
	return blocks
}

// unknownRegistrations are placeholder values meaning the plate is not yet
// issued; they normalize to a null registration.
var unknownRegistrations = map[string]struct{}{
	"TBA": {}, "N/A": {}, "N-A": {}, "NA": {}, "-": {},
}

// parseVehicleBlock reads one vehicle's labeled fields. A block with neither
// a registration number nor a parseable description is not a vehicle.
func parseVehicleBlock(block string) *models.Vehicle {
	vehicle := models.Vehicle{Extras: []models.VehicleExtra{}}
	found := false

	if m := registrationRe.FindStringSubmatch(block); m != nil {
		reg := strings.ReplaceAll(strings.ToUpper(m[1]), " ", "")
		if _, unknown := unknownRegistrations[reg]; !unknown {
			vehicle.RegistrationNumber = models.Ptr(reg)
		}
		found = true
	}
	if m := vehicleDescRe.FindStringSubmatch(block); m != nil {
		desc := normalize.CleanText(m[1])
		vehicle.Description = &desc
		vehicle.Year, vehicle.Make, vehicle.Model = ParseVehicleDescription(desc)
		found = true
	}
	if !found {
		return nil
	}

	if m := vinRe.FindStringSubmatch(block); m != nil {
		vehicle.VINNumber = models.Ptr(strings.ToUpper(m[1]))
	}
	if m := engineRe.FindStringSubmatch(block); m != nil {
		vehicle.EngineNumber = models.Ptr(strings.ToUpper(m[1]))
	}
	if m := descOfUseRe.FindStringSubmatch(block); m != nil {
		vehicle.DescriptionOfUse = models.Ptr(normalize.CleanText(m[1]))
	}
	vehicle.TypeOfCover = classifyCover(block)

	if m := itemSumRe.FindStringSubmatch(block); m != nil {
		suminsured.Classify(m[1]).ApplyToVehicle(&vehicle)
	}
	vehicle.Premium = blockPremium(block)
	if m := sasriaRe.FindStringSubmatch(block); m != nil {
		vehicle.SasriaPremium = normalize.Currency(m[1])
	}
	if m := extrasRe.FindStringSubmatch(block); m != nil {
		vehicle.Extras = parseExtras(m[1])
	}
	return &vehicle
}

var extraValueRe = regexp.MustCompile(`^(.*?)\s*[\-–:]?\s*` + amountPattern + `$`)

// parseExtras splits a comma-separated extras line into entries, pulling a
// trailing amount off each entry when present.
func parseExtras(raw string) []models.VehicleExtra {
	extras := []models.VehicleExtra{}
	for _, part := range strings.Split(raw, ",") {
		part = normalize.CleanText(part)
		if part == "" {
			continue
		}
		extra := models.VehicleExtra{Description: part}
		if m := extraValueRe.FindStringSubmatch(part); m != nil && strings.TrimSpace(m[1]) != "" {
			extra.Description = normalize.CleanText(m[1])
			extra.Value = normalize.Currency(m[2])
		}
		extras = append(extras, extra)
	}
	return extras
}

// ParseVehicleDescription splits a schedule vehicle description of the form
// "<year> <make> <model>" into its parts. The make is matched against the
// known manufacturer table; an unrecognized make leaves the first word as
// make and the rest as model.
func ParseVehicleDescription(desc string) (*int, *string, *string) {
	m := yearMakeRe.FindStringSubmatch(strings.TrimSpace(desc))
	if m == nil {
		return nil, nil, nil
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil, nil
	}

	rest := strings.TrimSpace(m[2])
	upper := strings.ToUpper(rest)
	for _, maker := range vehicleMakes {
		if strings.HasPrefix(upper, maker+" ") || upper == maker {
			model := strings.TrimSpace(rest[len(maker):])
			if model == "" {
				return &year, models.Ptr(maker), nil
			}
			return &year, models.Ptr(maker), &model
		}
	}

	fields := strings.SplitN(rest, " ", 2)
	if len(fields) == 1 {
		return &year, &fields[0], nil
	}
	model := strings.TrimSpace(fields[1])
	return &year, &fields[0], &model
}

// classifyCover maps the block's cover wording onto the cover enumeration.
func classifyCover(block string) *string {
	lower := strings.ToLower(block)
	for _, ct := range coverTypes {
		if strings.Contains(lower, ct.keyword) {
			return models.Ptr(ct.cover)
		}
	}
	return nil
}
