package amostoken

import "sort"

// Code is the 16 bit value that starts every token
type Code uint16

// SpecKind says which of the three shapes a table entry has
type SpecKind int

const (
	Sentinel    SpecKind = iota // the zero code, no name and no payload
	Literal                     // a name and nothing else
	WithPayload                 // a name followed by data
)

func (sk SpecKind) String() string {
	return []string{"SENTINEL", "LITERAL", "PAYLOAD"}[sk]
}

// Payload selects the reader for a WithPayload entry
type Payload int

const (
	PayloadNone Payload = iota
	PayloadInt
	PayloadFloat
	PayloadLabel
	PayloadString
	PayloadRem
	PayloadProcedure
	PayloadExtension
	PayloadSkip
)

// Spec is one entry in the token table
type Spec struct {
	Kind    SpecKind
	Name    string
	Payload Payload
	Skip    int // bytes to step over, PayloadSkip only
}

// Codes the rest of the package and its callers refer to by name
const (
	EndOfLine   Code = 0x0000
	VariableTok Code = 0x0006
	LabelTok    Code = 0x000C
	CallTok     Code = 0x0012
	GotoRefTok  Code = 0x0018
	BinValTok   Code = 0x001E
	DblStrTok   Code = 0x0026
	SglStrTok   Code = 0x002E
	HexValTok   Code = 0x0036
	DecValTok   Code = 0x003E
	FloatTok    Code = 0x0046
	ExtTok      Code = 0x004E
	ForTok      Code = 0x023C
	ExitIfTok   Code = 0x0290
	ProcTok     Code = 0x0376
	EndProcTok  Code = 0x0390
	PrintTok    Code = 0x0476
	RemTok      Code = 0x064A
	QuoteRemTok Code = 0x0652
)

func sentinel() Spec                   { return Spec{Kind: Sentinel} }
func lit(name string) Spec             { return Spec{Kind: Literal, Name: name} }
func with(name string, p Payload) Spec { return Spec{Kind: WithPayload, Name: name, Payload: p} }
func skip(name string, n int) Spec {
	return Spec{Kind: WithPayload, Name: name, Payload: PayloadSkip, Skip: n}
}

// Lookup finds the table entry for a code
func Lookup(code Code) (Spec, bool) {
	spec, ok := tokenTable[code]
	return spec, ok
}

// Codes lists every code in the table, lowest first
func Codes() []Code {
	codes := make([]Code, 0, len(tokenTable))
	for code := range tokenTable {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// tokenTable is built once and only ever read.
// Several codes share a name, the editor gives each syntax
// variant of an instruction its own code.
var tokenTable = map[Code]Spec{
	0x0000: sentinel(),
	0x0006: with("Variable", PayloadLabel),
	0x000C: with("Label", PayloadLabel),
	0x0012: with("Call", PayloadLabel),
	0x0018: with("Goto Label Ref", PayloadLabel),
	0x001E: with("BinVal", PayloadInt),
	0x0026: with("Dbl Str", PayloadString),
	0x002E: with("Sgl Str", PayloadString),
	0x0036: with("HexVal", PayloadInt),
	0x003E: with("DecVal", PayloadInt),
	0x0046: with("Float", PayloadFloat),
	0x004E: with("Extension", PayloadExtension),
	0x0054: lit(":"),
	0x005C: lit(","),
	0x0064: lit(";"),
	0x006C: lit("#"),
	0x0074: lit("("),
	0x007C: lit(")"),
	0x0084: lit("["),
	0x008C: lit("]"),
	0x0094: lit("To"),
	0x009C: lit("Not"),
	0x00A6: lit("Swap"),
	0x00B0: lit("Def Fn"),
	0x00BC: lit("Fn"),
	0x00C4: lit("Follow Off"),
	0x00D4: lit("Follow"),
	0x00E0: lit("Resume Next"),
	0x00F2: lit("Inkey$"),
	0x00FE: lit("Repeat$"),
	0x010E: lit("Zone$"),
	0x011C: lit("Border$"),
	0x012C: lit("Double Buffer"),
	0x0140: lit("Start"),
	0x014C: lit("Length"),
	0x015A: lit("Doke"),
	0x0168: lit("On Menu Del"),
	0x017A: lit("On Menu On"),
	0x018A: lit("On Menu Off"),
	0x019C: lit("Every On"),
	0x01AA: lit("Every Off"),
	0x01BA: lit("Logbase"),
	0x01C8: lit("Logic"),
	0x01D4: lit("Logic"),
	0x01DC: lit("Asc"),
	0x01E6: lit("As"),
	0x01EE: lit("Call"),
	0x01F8: lit("Execall"),
	0x0206: lit("Gfxcall"),
	0x0214: lit("Doscall"),
	0x0222: lit("Intcall"),
	0x0230: lit("Freeze"),
	0x023C: skip("For", 2),
	0x0246: lit("Next"),
	0x0250: skip("Repeat", 2),
	0x025C: lit("Until"),
	0x0268: skip("While", 2),
	0x0274: lit("Wend"),
	0x027E: skip("Do", 2),
	0x0286: lit("Loop"),
	0x0290: skip("Exit If", 4),
	0x029E: skip("Exit", 4),
	0x02A8: lit("Goto"),
	0x02B2: lit("Gosub"),
	0x02BE: skip("If", 2),
	0x02C6: lit("Then"),
	0x02D0: skip("Else", 2),
	0x02DA: lit("EndIf"),
	0x02E6: lit("On Error"),
	0x02F4: lit("On Break Proc"),
	0x0308: lit("On Menu"),
	0x0316: skip("On", 4),
	0x031E: lit("Resume Label"),
	0x0330: lit("Resume"),
	0x033C: lit("Pop Proc"),
	0x034A: lit("Every"),
	0x0356: lit("Step"),
	0x0360: lit("Return"),
	0x036C: lit("Pop"),
	0x0376: with("Procedure", PayloadProcedure),
	0x0386: lit("Proc"),
	0x0390: lit("End Proc"),
	0x039E: lit("Shared"),
	0x03AA: lit("Global"),
	0x03B6: lit("End"),
	0x03C0: lit("Stop"),
	0x03CA: lit("Param#"),
	0x03D6: lit("Param$"),
	0x03E2: lit("Param"),
	0x03EE: lit("Error"),
	0x03FA: lit("Errn"),
	0x0404: skip("Data", 2),
	0x040E: lit("Read"),
	0x0418: lit("Restore"),
	0x0426: lit("Break Off"),
	0x0436: lit("Break On"),
	0x0444: lit("Inc"),
	0x044E: lit("Dec"),
	0x0458: lit("Add"),
	0x0462: lit("Add"),
	0x046A: lit("Print #"),
	0x0476: lit("Print"),
	0x0482: lit("Lprint"),
	0x048E: lit("Input$"),
	0x049C: lit("Input$"),
	0x04A6: lit("Using"),
	0x04B2: lit("Input #"),
	0x04BE: lit("Line Input #"),
	0x04D0: lit("Input"),
	0x04DC: lit("Line Input"),
	0x04EC: lit("Run"),
	0x04F6: lit("Run"),
	0x04FE: lit("Set Buffer"),
	0x050E: lit("Mid$"),
	0x051E: lit("Mid$"),
	0x0528: lit("Left$"),
	0x0536: lit("Right$"),
	0x0546: lit("Flip$"),
	0x0552: lit("Chr$"),
	0x055E: lit("Space$"),
	0x056C: lit("String$"),
	0x057C: lit("Upper$"),
	0x058A: lit("Lower$"),
	0x0598: lit("Str$"),
	0x05A4: lit("Val"),
	0x05AE: lit("Bin$"),
	0x05BA: lit("Bin$"),
	0x05C4: lit("Hex$"),
	0x05D0: lit("Hex$"),
	0x05DA: lit("Len"),
	0x05E4: lit("Instr$"),
	0x05F4: lit("Instr$"),
	0x0600: lit("Tab$"),
	0x060A: lit("Free"),
	0x0614: lit("Varptr"),
	0x0620: lit("Remember X"),
	0x0630: lit("Remember Y"),
	0x0640: lit("Dim"),
	0x064A: with("Rem", PayloadRem),
	0x0652: with("'", PayloadRem),
	0x0658: lit("Sort"),
	0x0662: lit("Match"),
	0x0670: lit("Edit"),
	0x067A: lit("Direct"),
	0x0686: lit("Rnd"),
	0x0690: lit("Randomize"),
	0x06A0: lit("Sgn"),
	0x06AA: lit("Abs"),
	0x06B4: lit("Int"),
	0x06BE: lit("Radian"),
	0x06CA: lit("Degree"),
	0x06D6: lit("Pi#"),
	0x06E0: lit("Fix"),
	0x06EA: lit("Min"),
	0x06F6: lit("Max"),
	0x0702: lit("Sin"),
	0x070C: lit("Cos"),
	0x0716: lit("Tan"),
	0x0720: lit("Asin"),
	0x072C: lit("Acos"),
	0x0738: lit("Atan"),
	0x0744: lit("Hsin"),
	0x0750: lit("Hcos"),
	0x075C: lit("Htan"),
	0x0768: lit("Sqrt"),
	0x0772: lit("Log"),
	0x077C: lit("Ln"),
	0x0786: lit("Exp"),
	0x0790: lit("Menu To Bank"),
	0x07A4: lit("Bank To Menu"),
	0x07B8: lit("Menu On"),
	0x07C6: lit("Menu Off"),
	0x07D4: lit("Menu Calc"),
	0x07E4: lit("Menu Mouse On"),
	0x07F8: lit("Menu Mouse Off"),
	0x080C: lit("Menu Base"),
	0x081E: lit("Set Menu"),
	0x0832: lit("X Menu"),
	0x0840: lit("Y Menu"),
	0x084E: lit("Menu Key"),
	0x0862: lit("Menu Bar"),
	0x0872: lit("Menu Line"),
	0x0882: lit("Menu Tline"),
	0x0894: lit("Menu Movable"),
	0x08A8: lit("Menu Static"),
	0x08BA: lit("Menu Item Movable"),
	0x08D2: lit("Menu Item Static"),
	0x08EA: lit("Menu Active"),
	0x08FC: lit("Menu Inactive"),
	0x0910: lit("Menu Separate"),
	0x0924: lit("Menu Link"),
	0x0934: lit("Menu Called"),
	0x0946: lit("Menu Once"),
	0x0956: lit("Menu Del"),
	0x0964: lit("Menu$"),
	0x0970: lit("Choice"),
	0x097E: lit("Choice"),
	0x0986: lit("Screen Copy"),
	0x099C: lit("Screen Copy"),
	0x09A8: lit("Screen Copy"),
	0x09BE: lit("Screen Copy"),
	0x09D6: lit("Screen Clone"),
	0x09EA: lit("Screen Open"),
	0x0A04: lit("Screen Close"),
	0x0A18: lit("Screen Display"),
	0x0A36: lit("Screen Offset"),
	0x0A4E: lit("Screen Size"),
	0x0A5E: lit("Screen Colour"),
	0x0A72: lit("Screen To Front"),
	0x0A88: lit("Screen To Front"),
	0x0A90: lit("Screen To Back"),
	0x0AA6: lit("Screen To Back"),
	0x0AAE: lit("Screen Hide"),
	0x0AC0: lit("Screen Hide"),
	0x0AC8: lit("Screen Show"),
	0x0ADA: lit("Screen Show"),
	0x0AE2: lit("Screen Swap"),
	0x0AF4: lit("Screen Swap"),
	0x0AFC: lit("Save If"),
	0x0B0C: lit("Save Iff"),
	0x0B16: lit("View"),
	0x0B20: lit("Auto View Off"),
	0x0B34: lit("Auto View On"),
	0x0B46: lit("Screen Base"),
	0x0B58: lit("Screen Width"),
	0x0B6C: lit("Screen Width"),
	0x0B74: lit("Screen Height"),
	0x0B88: lit("Screen Height"),
	0x0B90: lit("Get Palette"),
	0x0BA4: lit("Get Palette"),
	0x0BAE: lit("Cls"),
	0x0BB8: lit("Cls"),
	0x0BC0: lit("Cls"),
	0x0BD0: lit("Def Scroll"),
	0x0BEE: lit("X Hard"),
	0x0BFC: lit("X Hard"),
	0x0C06: lit("Y Hard"),
	0x0C14: lit("Y Hard"),
	0x0C1E: lit("X Screen"),
	0x0C2E: lit("X Screen"),
	0x0C38: lit("Y Screen"),
	0x0C48: lit("Y Screen"),
	0x0C52: lit("X Text"),
	0x0C60: lit("Y Text"),
	0x0C6E: lit("Screen"),
	0x0C7C: lit("Screen"),
	0x0C84: lit("Hires"),
	0x0C90: lit("Lowres"),
	0x0C9C: lit("Dual Playfield"),
	0x0CB4: lit("Dual Priority"),
	0x0CCA: lit("Wait Vbl"),
	0x0CD8: lit("Default Palette"),
	0x0CEE: lit("Default"),
	0x0CFC: lit("Palette"),
	0x0D0A: lit("Colour Back"),
	0x0D1C: lit("Colour"),
	0x0D2C: lit("Colour"),
	0x0D34: lit("Flash Off"),
	0x0D44: lit("Flash"),
	0x0D52: lit("Shift Off"),
	0x0D62: lit("Shift Up"),
	0x0D78: lit("Shift Down"),
	0x0D90: lit("Set Rainbow"),
	0x0DAE: lit("Set Rainbow"),
	0x0DC2: lit("Rainbow Del"),
	0x0DD4: lit("Rainbow Del"),
	0x0DDC: lit("Rainbow"),
	0x0DF0: lit("Rain"),
	0x0DFE: lit("Fade"),
	0x0E08: lit("Phybase"),
	0x0E16: lit("Physic"),
	0x0E24: lit("Physic"),
	0x0E2C: lit("Autoback"),
	0x0E3C: lit("Plot"),
	0x0E4A: lit("Plot"),
	0x0E56: lit("Point"),
	0x0E64: lit("Draw To"),
	0x0E74: lit("Draw"),
	0x0E86: lit("Ellipse"),
	0x0E9A: lit("Circle"),
	0x0EAC: lit("Polyline to"),
	0x0EBA: lit("Polygon"),
	0x0EC8: lit("Bar"),
	0x0ED8: lit("Box"),
	0x0EE8: lit("Paint"),
	0x0EF8: lit("Paint"),
	0x0F04: lit("Gr Locate"),
	0x0F16: lit("Text Length"),
	0x0F28: lit("Text Style"),
	0x0F38: lit("Text Base"),
	0x0F3A: lit("Text Base"),
	0x0F4A: lit("Text"),
	0x0F5A: lit("Set Text"),
	0x0F6A: lit("Set Paint"),
	0x0F7A: lit("Get Fonts"),
	0x0F8A: lit("Get Disc Fonts"),
	0x0F9E: lit("Get Rom Fonts"),
	0x0FB2: lit("Set Font"),
	0x0FC2: lit("Font"),
	0x0FCE: lit("HSlider"),
	0x0FE8: lit("VSlider"),
	0x1002: lit("Set Slider"),
	0x1022: lit("Set Pattern"),
	0x1034: lit("Set Line"),
	0x1044: lit("Ink"),
	0x1050: lit("Ink"),
	0x105A: lit("Ink"),
	0x1066: lit("Gr Writing"),
	0x1078: lit("Clip"),
	0x1084: lit("Clip"),
	0x1092: lit("Set Tempras"),
	0x10A4: lit("Set Tempras"),
	0x10AC: lit("Set Tempras"),
	0x10B6: lit("Appear"),
	0x10C8: lit("Appear"),
	0x10D6: lit("Zoom"),
	0x10F4: lit("Get Cblock"),
	0x110E: lit("Put Cblock"),
	0x1120: lit("Put Cblock"),
	0x112C: lit("Del Cblock"),
	0x113E: lit("Del Cblock"),
	0x1146: lit("Get Block"),
	0x1160: lit("Get Block"),
	0x1172: lit("Put Block"),
	0x1184: lit("Put Block"),
	0x1190: lit("Put Block"),
	0x119E: lit("Put Block"),
	0x11AE: lit("Del Block"),
	0x11BE: lit("Del Block"),
	0x11C6: lit("Key Speed"),
	0x11D8: lit("Key State"),
	0x11E8: lit("Key Shift"),
	0x11F8: lit("Joy"),
	0x1202: lit("Jup"),
	0x120C: lit("Jdown"),
	0x1218: lit("Jleft"),
	0x1224: lit("Jright"),
	0x1232: lit("Fire"),
	0x123E: lit("True"),
	0x1248: lit("False"),
	0x1254: lit("Put Key"),
	0x1262: lit("Scancode"),
	0x1270: lit("Scanshift"),
	0x1280: lit("Clear Key"),
	0x1290: lit("Wait Key"),
	0x129E: lit("Wait"),
	0x12AA: lit("Key$"),
	0x12B6: lit("Scan$"),
	0x12BC: lit("Scan$"),
	0x12C4: lit("Scan$"),
	0x12CE: lit("Timer"),
	0x12DA: lit("Wind Open"),
	0x12F4: lit("Wind Open"),
	0x1306: lit("Wind Open"),
	0x131A: lit("Wind Close"),
	0x132A: lit("Wind Save"),
	0x133A: lit("Wind Move"),
	0x134C: lit("Wind Size"),
	0x135E: lit("Window"),
	0x136C: lit("Windon"),
	0x1378: lit("Locate"),
	0x1388: lit("Clw"),
	0x1392: lit("Home"),
	0x139C: lit("Curs Pen"),
	0x13AC: lit("Pen$"),
	0x13B8: lit("Paper$"),
	0x13C6: lit("At"),
	0x13D2: lit("Pen"),
	0x13DC: lit("Paper"),
	0x13E8: lit("Center"),
	0x13F6: lit("Border"),
	0x1408: lit("Writing"),
	0x1418: lit("Writing"),
	0x1422: lit("Title Top"),
	0x1432: lit("Title Bottom"),
	0x1446: lit("Curs Off"),
	0x1454: lit("Curs On"),
	0x1462: lit("Inverse Off"),
	0x1474: lit("Inverse On"),
	0x1484: lit("Under Off"),
	0x1494: lit("Under On"),
	0x14A2: lit("Shade Off"),
	0x14B2: lit("Shade On"),
	0x14C0: lit("Scroll Off"),
	0x14D0: lit("Scroll On"),
	0x14E0: lit("Scroll"),
	0x14EE: lit("Cup$"),
	0x14F8: lit("CDown$"),
	0x1504: lit("CLeft$"),
	0x1510: lit("CRight$"),
	0x151E: lit("Cup"),
	0x1528: lit("Cdown"),
	0x1534: lit("Cleft"),
	0x1540: lit("Cright"),
	0x154C: lit("Memorize X"),
	0x155C: lit("Memorize Y"),
	0x156C: lit("Cmove$"),
	0x157C: lit("CMove"),
	0x158A: lit("Cline"),
	0x1596: lit("Cline"),
	0x159E: lit("Hscroll"),
	0x15AC: lit("Vscroll"),
	0x15BA: lit("Set Tab"),
	0x15C8: lit("Set Curs"),
	0x15E6: lit("X Curs"),
	0x15F2: lit("Y Curs"),
	0x15FE: lit("X Graphics"),
	0x160E: lit("Y Graphics"),
	0x161E: lit("Xgr"),
	0x1628: lit("Ygr"),
	0x1632: lit("Reserve Zone"),
	0x1646: lit("Reserve Zone"),
	0x164E: lit("Reset Zone"),
	0x1660: lit("Reset Zone"),
	0x1668: lit("Set Zone"),
	0x1680: lit("Zone"),
	0x168E: lit("Zone"),
	0x169A: lit("HZone"),
	0x16AA: lit("Hzone"),
	0x16B6: lit("Scin"),
	0x16C4: lit("Scin"),
	0x16D0: lit("Mouse Screen"),
	0x16E2: lit("Mouse Zone"),
	0x16F2: lit("Set Input"),
	0x1704: lit("Close Workbench"),
	0x171A: lit("Close Editor"),
	0x172C: lit("Dir First"),
	0x173E: lit("Dir Next"),
	0x174E: lit("Exist"),
	0x175A: lit("Dir$"),
	0x1766: lit("Ldir/w"),
	0x1774: lit("Ldir/w"),
	0x177C: lit("Dir/w"),
	0x1788: lit("Dir/w"),
	0x1790: lit("Ldir"),
	0x179C: lit("Ldir"),
	0x17A4: lit("Dir"),
	0x17AE: lit("Dir"),
	0x17B6: lit("Set Dir"),
	0x17C4: lit("Set Dir"),
	0x17D4: lit("Load Iff"),
	0x17E4: lit("Load Iff"),
	0x17EE: lit("Mask Iff"),
	0x17FE: lit("Picture"),
	0x180C: lit("Bload"),
	0x181A: lit("Bsave"),
	0x1820: lit("Pload"),
	0x182A: lit("Pload"),
	0x1838: lit("Save"),
	0x1844: lit("Save"),
	0x184E: lit("Load"),
	0x185A: lit("Load"),
	0x1864: lit("Dfree"),
	0x1870: lit("Mkdir"),
	0x187C: lit("Lof"),
	0x1886: lit("Eof"),
	0x1890: lit("Pof"),
	0x189C: lit("Port"),
	0x18A8: lit("Open Random"),
	0x18BC: lit("Open In"),
	0x18CC: lit("Open Out"),
	0x18DE: lit("Open Port"),
	0x18F0: lit("Append"),
	0x1900: lit("Close"),
	0x190C: lit("Close"),
	0x1914: lit("Parent"),
	0x1920: lit("Rename"),
	0x1930: lit("Kill"),
	0x193C: lit("Drive"),
	0x1948: lit("Field"),
	0x1954: lit("Fsel$"),
	0x1962: lit("Fsel$"),
	0x196C: lit("Fsel$"),
	0x1978: lit("Fsel$"),
	0x1986: lit("Set Sprite Buffer"),
	0x199E: lit("Sprite Off"),
	0x19B0: lit("Sprite Off"),
	0x19B8: lit("Sprite Priority"),
	0x19CE: lit("Sprite Update Off"),
	0x19E6: lit("Sprite Update On"),
	0x19FC: lit("Sprite Update"),
	0x1A10: lit("Spritebob Col"),
	0x1A26: lit("Spritebob Col"),
	0x1A32: lit("Sprite Col"),
	0x1A44: lit("Sprite Col"),
	0x1A50: lit("Set Hardcol"),
	0x1A64: lit("Hardcol"),
	0x1A72: lit("Sprite Base"),
	0x1A84: lit("Icon Base"),
	0x1A94: lit("Sprite"),
	0x1AA8: lit("Bob Off"),
	0x1AB6: lit("Bob Off"),
	0x1ABE: lit("Bob Update Off"),
	0x1AD2: lit("Bob Update On"),
	0x1AE6: lit("Bob Update"),
	0x1AF6: lit("Bob Clear"),
	0x1B06: lit("Bob Draw"),
	0x1B14: lit("Bobsprite Col"),
	0x1B2A: lit("Bobsprite Col"),
	0x1B36: lit("Bob Col"),
	0x1B46: lit("Bob Col"),
	0x1B52: lit("Col"),
	0x1B5C: lit("Limit Bob"),
	0x1B64: lit("Limit Bob"),
	0x1B6C: lit("Limit Bob"),
	0x1B7A: lit("Limit Bob"),
	0x1B8A: lit("Set Bob"),
	0x1B9E: lit("Bob"),
	0x1BAE: lit("Get Sprite Palette"),
	0x1BC8: lit("Get Sprite Palette"),
	0x1BD0: lit("Get Sprite"),
	0x1BEA: lit("Get Sprite"),
	0x1BFC: lit("Get Bob"),
	0x1C14: lit("Get Bob"),
	0x1C26: lit("Del Sprite"),
	0x1C38: lit("Del Sprite"),
	0x1C42: lit("Del Bob"),
	0x1C52: lit("Del Bob"),
	0x1C5C: lit("Del Icon"),
	0x1C6C: lit("Del Icon"),
	0x1C76: lit("Ins Sprite"),
	0x1C88: lit("Ins Bob"),
	0x1C96: lit("Ins Icon"),
	0x1CA6: lit("Get Icon Palette"),
	0x1CBE: lit("Get Icon Palette"),
	0x1CC6: lit("Get Icon"),
	0x1CDE: lit("Get Icon"),
	0x1CF0: lit("Put Bob"),
	0x1CFE: lit("Paste Bob"),
	0x1D12: lit("Paste Icon"),
	0x1D28: lit("Make Mask"),
	0x1D38: lit("Make Mask"),
	0x1D40: lit("No Mask"),
	0x1D4E: lit("No Mask"),
	0x1D56: lit("Make Icon Mask"),
	0x1D6C: lit("Make Icon Mask"),
	0x1D74: lit("No Icon Mask"),
	0x1D88: lit("No Icon Mask"),
	0x1D90: lit("Hot Spot"),
	0x1DA2: lit("Hot Spot"),
	0x1DAE: lit("Priority On"),
	0x1DC0: lit("Priority Off"),
	0x1DD2: lit("Hide On"),
	0x1DE0: lit("Hide"),
	0x1DEA: lit("Show On"),
	0x1DF8: lit("Show"),
	0x1E02: lit("Change Mouse"),
	0x1E16: lit("X Mouse"),
	0x1E24: lit("Y Mouse"),
	0x1E32: lit("Mouse Key"),
	0x1E42: lit("Mouse Click"),
	0x1E54: lit("Limit Mouse"),
	0x1E66: lit("Limit Mouse"),
	0x1E6E: lit("Limit Mouse"),
	0x1E7C: lit("Unfreeze"),
	0x1E8A: lit("Move X"),
	0x1E9A: lit("Move X"),
	0x1EA6: lit("Move Y"),
	0x1EB6: lit("Move y"),
	0x1EC2: lit("Move Off"),
	0x1ED2: lit("Move Off"),
	0x1EDA: lit("Move On"),
	0x1EE8: lit("Move On"),
	0x1EF0: lit("Move Freeze"),
	0x1F02: lit("Move Freeze"),
	0x1F0A: lit("Anim Off"),
	0x1F1A: lit("Anim Off"),
	0x1F22: lit("Anim On"),
	0x1F30: lit("Anim On"),
	0x1F38: lit("Anim Freeze"),
	0x1F4A: lit("Anim Freeze"),
	0x1F52: lit("Anim"),
	0x1F60: lit("Anim"),
	0x1F6C: lit("Movon"),
	0x1F78: lit("Chanan"),
	0x1F86: lit("Chanmv"),
	0x1F94: lit("Channel"),
	0x1FA2: lit("Amreg"),
	0x1FB0: lit("Amreg"),
	0x1FBC: lit("Amal On"),
	0x1FCA: lit("Amal On"),
	0x1FD2: lit("Amal Off"),
	0x1FE2: lit("Amal Off"),
	0x1FEA: lit("Amal Freeze"),
	0x1FFC: lit("Amal Freeze"),
	0x2004: lit("Amalerr"),
	0x2012: lit("Amal"),
	0x2020: lit("Amal"),
	0x202C: lit("Amplay"),
	0x203C: lit("Amplay"),
	0x204A: lit("Synchro On"),
	0x205A: lit("Synchro Off"),
	0x206C: lit("Synchro"),
	0x207A: lit("Update Off"),
	0x208A: lit("Update On"),
	0x209A: lit("Update Every"),
	0x20AE: lit("Update"),
	0x20BA: lit("X Bob"),
	0x20C6: lit("Y Bob"),
	0x20D2: lit("X Sprite"),
	0x20E2: lit("Y Sprite"),
	0x20F2: lit("Reserve As Work"),
	0x210A: lit("Reserve As Chip Work"),
	0x2128: lit("Reserve As Data"),
	0x2140: lit("Reserve As Chip Data"),
	0x215E: lit("Erase"),
	0x216A: lit("List Bank"),
	0x217A: lit("Chip Free"),
	0x218A: lit("Fast Free"),
	0x219A: lit("Fill"),
	0x21AA: lit("Copy"),
	0x21BA: lit("Hunt"),
	0x21CA: lit("Poke"),
	0x21D8: lit("Loke"),
	0x21E6: lit("Peek"),
	0x21F2: lit("Deek"),
	0x21FE: lit("Leek"),
	0x220A: lit("Bset.<>"),
	0x2218: lit("Bclr"),
	0x2226: lit("Bchg"),
	0x2234: lit("Btst"),
	0x2242: lit("Ror.<>"),
	0x2250: lit("Ror.w"),
	0x225E: lit("Ror.l"),
	0x226C: lit("Rol.<>"),
	0x227A: lit("Rol.w"),
	0x2288: lit("Rol.l"),
	0x2296: lit("Areg"),
	0x22A2: lit("Dreg"),
	0x22AE: lit("Copper On"),
	0x22BE: lit("Copper Off"),
	0x22CE: lit("Cop Swap"),
	0x22DC: lit("Cop Reset"),
	0x22EC: lit("Cop Wait"),
	0x22FE: lit("Cop Wait"),
	0x230C: lit("Cop Movel"),
	0x231E: lit("Cop Move"),
	0x2330: lit("Cop Logic"),
	0x2340: lit("Prg First$"),
	0x2352: lit("Prg Next$"),
	0x2362: lit("Psel$"),
	0x2370: lit("Psel$"),
	0x237A: lit("Psel$"),
	0x2386: lit("Psel$"),
	0x2394: lit("Prun"),
	0x23A0: lit("Bgrab"),
	0x23AC: lit("Put"),
	0x23B8: lit("Get"),
	0x23C4: lit("System"),
	0x23D0: lit("Multi Wait"),
	0x23E0: lit("I Bob"),
	0x23EC: lit("I Sprite"),
	0x23FC: lit("Priority Reverse On"),
	0x2416: lit("Priority Reverse Off"),
	0x2430: lit("Dev First"),
	0x2442: lit("Dev Next"),
	0x2452: lit("Hrev Block"),
	0x2464: lit("Vrev Block"),
	0x2476: lit("Hrev"),
	0x2482: lit("Vrev"),
	0x248E: lit("Rev"),
	0x2498: lit("Bank Swap"),
	0x24AA: lit("Amos To Front"),
	0x24BE: lit("Amos To Back"),
	0x24D0: lit("Amos Here"),
	0x24E0: lit("Amos Lock"),
	0x24F0: lit("Amos Unlock"),
	0x2502: lit("Display Height"),
	0x2516: lit("Ntsc"),
	0x2520: lit("Laced"),
	0x252C: lit("Prg State"),
	0x253C: lit("Command Line$"),
	0x2550: lit("Disc Info$"),
	0x292A: lit("Read Text"),
	0xFF3E: lit("Xor"),
	0xFF4C: lit("Or"),
	0xFF58: lit("And"),
	0xFF66: lit("<>"),
	0xFF70: lit("><"),
	0xFF7A: lit("<="),
	0xFF84: lit("=<"),
	0xFF8E: lit(">="),
	0xFF98: lit("=>"),
	0xFFA2: lit("="),
	0xFFAC: lit("<"),
	0xFFB6: lit(">"),
	0xFFC0: lit("+"),
	0xFFCA: lit("-"),
	0xFFD4: lit("Mod"),
	0xFFE2: lit("*"),
	0xFFEC: lit("/"),
	0xFFF6: lit("^"),
}
