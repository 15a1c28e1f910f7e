package unicodeblock

// registry mirrors the Unicode block registry (Blocks.txt) with the assigned
// character count and script breakdown of each block.
var registry = []BlockRange{
	{Low: 0x0000, High: 0x007F, Name: "Basic Latin", Assigned: 128, Scripts: "Latin (52 characters), Common (76 characters)"},
	{Low: 0x0080, High: 0x00FF, Name: "Latin-1 Supplement", Assigned: 128, Scripts: "Latin (64 characters), Common (64 characters)"},
	{Low: 0x0100, High: 0x017F, Name: "Latin Extended-A", Assigned: 128, Scripts: "Latin"},
	{Low: 0x0180, High: 0x024F, Name: "Latin Extended-B", Assigned: 208, Scripts: "Latin"},
	{Low: 0x0250, High: 0x02AF, Name: "IPA Extensions", Assigned: 96, Scripts: "Latin"},
	{Low: 0x02B0, High: 0x02FF, Name: "Spacing Modifier Letters", Assigned: 80, Scripts: "Bopomofo (2 characters), Latin (14 characters), Common (64 characters)"},
	{Low: 0x0300, High: 0x036F, Name: "Combining Diacritical Marks", Assigned: 112, Scripts: "Inherited"},
	{Low: 0x0370, High: 0x03FF, Name: "Greek and Coptic", Assigned: 135, Scripts: "Coptic (14 characters), Greek (117 characters), Common (4 characters)"},
	{Low: 0x0400, High: 0x04FF, Name: "Cyrillic", Assigned: 256, Scripts: "Cyrillic (254 characters), Inherited (2 characters)"},
	{Low: 0x0500, High: 0x052F, Name: "Cyrillic Supplement", Assigned: 48, Scripts: "Cyrillic"},
	{Low: 0x0530, High: 0x058F, Name: "Armenian", Assigned: 89, Scripts: "Armenian (88 characters), Common (1 character)"},
	{Low: 0x0590, High: 0x05FF, Name: "Hebrew", Assigned: 87, Scripts: "Hebrew"},
	{Low: 0x0600, High: 0x06FF, Name: "Arabic", Assigned: 255, Scripts: "Arabic (237 characters), Common (6 characters), Inherited (12 characters)"},
	{Low: 0x0700, High: 0x074F, Name: "Syriac", Assigned: 77, Scripts: "Syriac"},
	{Low: 0x0750, High: 0x077F, Name: "Arabic Supplement", Assigned: 48, Scripts: "Arabic"},
	{Low: 0x0780, High: 0x07BF, Name: "Thaana", Assigned: 50, Scripts: "Thaana"},
	{Low: 0x07C0, High: 0x07FF, Name: "NKo", Assigned: 59, Scripts: "Nko"},
	{Low: 0x0800, High: 0x083F, Name: "Samaritan", Assigned: 61, Scripts: "Samaritan"},
	{Low: 0x0840, High: 0x085F, Name: "Mandaic", Assigned: 29, Scripts: "Mandaic"},
	{Low: 0x0860, High: 0x086F, Name: "Syriac Supplement", Assigned: 11, Scripts: "Syriac"},
	{Low: 0x08A0, High: 0x08FF, Name: "Arabic Extended-A", Assigned: 73, Scripts: "Arabic (72 characters), Common (1 character)"},
	{Low: 0x0900, High: 0x097F, Name: "Devanagari", Assigned: 128, Scripts: "Devanagari (124 characters), Common (2 characters), Inherited (2 characters)"},
	{Low: 0x0980, High: 0x09FF, Name: "Bengali", Assigned: 95, Scripts: "Bengali"},
	{Low: 0x0A00, High: 0x0A7F, Name: "Gurmukhi", Assigned: 79, Scripts: "Gurmukhi"},
	{Low: 0x0A80, High: 0x0AFF, Name: "Gujarati", Assigned: 91, Scripts: "Gujarati"},
	{Low: 0x0B00, High: 0x0B7F, Name: "Oriya", Assigned: 90, Scripts: "Oriya"},
	{Low: 0x0B80, High: 0x0BFF, Name: "Tamil", Assigned: 72, Scripts: "Tamil"},
	{Low: 0x0C00, High: 0x0C7F, Name: "Telugu", Assigned: 96, Scripts: "Telugu"},
	{Low: 0x0C80, High: 0x0CFF, Name: "Kannada", Assigned: 88, Scripts: "Kannada"},
	{Low: 0x0D00, High: 0x0D7F, Name: "Malayalam", Assigned: 117, Scripts: "Malayalam"},
	{Low: 0x0D80, High: 0x0DFF, Name: "Sinhala", Assigned: 90, Scripts: "Sinhala"},
	{Low: 0x0E00, High: 0x0E7F, Name: "Thai", Assigned: 87, Scripts: "Thai (86 characters), Common (1 character)"},
	{Low: 0x0E80, High: 0x0EFF, Name: "Lao", Assigned: 67, Scripts: "Lao"},
	{Low: 0x0F00, High: 0x0FFF, Name: "Tibetan", Assigned: 211, Scripts: "Tibetan (207 characters), Common (4 characters)"},
	{Low: 0x1000, High: 0x109F, Name: "Myanmar", Assigned: 160, Scripts: "Myanmar"},
	{Low: 0x10A0, High: 0x10FF, Name: "Georgian", Assigned: 88, Scripts: "Georgian (87 characters), Common (1 character)"},
	{Low: 0x1100, High: 0x11FF, Name: "Hangul Jamo", Assigned: 256, Scripts: "Hangul"},
	{Low: 0x1200, High: 0x137F, Name: "Ethiopic", Assigned: 358, Scripts: "Ethiopic"},
	{Low: 0x1380, High: 0x139F, Name: "Ethiopic Supplement", Assigned: 26, Scripts: "Ethiopic"},
	{Low: 0x13A0, High: 0x13FF, Name: "Cherokee", Assigned: 92, Scripts: "Cherokee"},
	{Low: 0x1400, High: 0x167F, Name: "Unified Canadian Aboriginal Syllabics", Assigned: 640, Scripts: "Canadian Aboriginal"},
	{Low: 0x1680, High: 0x169F, Name: "Ogham", Assigned: 29, Scripts: "Ogham"},
	{Low: 0x16A0, High: 0x16FF, Name: "Runic", Assigned: 89, Scripts: "Runic (86 characters), Common (3 characters)"},
	{Low: 0x1700, High: 0x171F, Name: "Tagalog", Assigned: 20, Scripts: "Tagalog"},
	{Low: 0x1720, High: 0x173F, Name: "Hanunoo", Assigned: 23, Scripts: "Hanunoo (21 characters), Common (2 characters)"},
	{Low: 0x1740, High: 0x175F, Name: "Buhid", Assigned: 20, Scripts: "Buhid"},
	{Low: 0x1760, High: 0x177F, Name: "Tagbanwa", Assigned: 18, Scripts: "Tagbanwa"},
	{Low: 0x1780, High: 0x17FF, Name: "Khmer", Assigned: 114, Scripts: "Khmer"},
	{Low: 0x1800, High: 0x18AF, Name: "Mongolian", Assigned: 156, Scripts: "Mongolian (153 characters), Common (3 characters)"},
	{Low: 0x18B0, High: 0x18FF, Name: "Unified Canadian Aboriginal Syllabics Extended", Assigned: 70, Scripts: "Canadian Aboriginal"},
	{Low: 0x1900, High: 0x194F, Name: "Limbu", Assigned: 68, Scripts: "Limbu"},
	{Low: 0x1950, High: 0x197F, Name: "Tai Le", Assigned: 35, Scripts: "Tai Le"},
	{Low: 0x1980, High: 0x19DF, Name: "New Tai Lue", Assigned: 83, Scripts: "New Tai Lue"},
	{Low: 0x19E0, High: 0x19FF, Name: "Khmer Symbols", Assigned: 32, Scripts: "Khmer"},
	{Low: 0x1A00, High: 0x1A1F, Name: "Buginese", Assigned: 30, Scripts: "Buginese"},
	{Low: 0x1A20, High: 0x1AAF, Name: "Tai Tham", Assigned: 127, Scripts: "Tai Tham"},
	{Low: 0x1AB0, High: 0x1AFF, Name: "Combining Diacritical Marks Extended", Assigned: 15, Scripts: "Inherited"},
	{Low: 0x1B00, High: 0x1B7F, Name: "Balinese", Assigned: 121, Scripts: "Balinese"},
	{Low: 0x1B80, High: 0x1BBF, Name: "Sundanese", Assigned: 64, Scripts: "Sundanese"},
	{Low: 0x1BC0, High: 0x1BFF, Name: "Batak", Assigned: 56, Scripts: "Batak"},
	{Low: 0x1C00, High: 0x1C4F, Name: "Lepcha", Assigned: 74, Scripts: "Lepcha"},
	{Low: 0x1C50, High: 0x1C7F, Name: "Ol Chiki", Assigned: 48, Scripts: "Ol Chiki"},
	{Low: 0x1C80, High: 0x1C8F, Name: "Cyrillic Extended-C", Assigned: 9, Scripts: "Cyrillic"},
	{Low: 0x1CC0, High: 0x1CCF, Name: "Sundanese Supplement", Assigned: 8, Scripts: "Sundanese"},
	{Low: 0x1CD0, High: 0x1CFF, Name: "Vedic Extensions", Assigned: 42, Scripts: "Common (15 characters), Inherited (27 characters)"},
	{Low: 0x1D00, High: 0x1D7F, Name: "Phonetic Extensions", Assigned: 128, Scripts: "Cyrillic (2 characters), Greek (15 characters), Latin (111 characters)"},
	{Low: 0x1D80, High: 0x1DBF, Name: "Phonetic Extensions Supplement", Assigned: 64, Scripts: "Greek (1 character), Latin (63 characters)"},
	{Low: 0x1DC0, High: 0x1DFF, Name: "Combining Diacritical Marks Supplement", Assigned: 63, Scripts: "Inherited"},
	{Low: 0x1E00, High: 0x1EFF, Name: "Latin Extended Additional", Assigned: 256, Scripts: "Latin"},
	{Low: 0x1F00, High: 0x1FFF, Name: "Greek Extended", Assigned: 233, Scripts: "Greek"},
	{Low: 0x2000, High: 0x206F, Name: "General Punctuation", Assigned: 111, Scripts: "Common (109 characters), Inherited (2 characters)"},
	{Low: 0x2070, High: 0x209F, Name: "Superscripts and Subscripts", Assigned: 42, Scripts: "Latin (15 characters), Common (27 characters)"},
	{Low: 0x20A0, High: 0x20CF, Name: "Currency Symbols", Assigned: 32, Scripts: "Common"},
	{Low: 0x20D0, High: 0x20FF, Name: "Combining Diacritical Marks for Symbols", Assigned: 33, Scripts: "Inherited"},
	{Low: 0x2100, High: 0x214F, Name: "Letterlike Symbols", Assigned: 80, Scripts: "Greek (1 character), Latin (4 characters), Common (75 characters)"},
	{Low: 0x2150, High: 0x218F, Name: "Number Forms", Assigned: 60, Scripts: "Latin (41 characters), Common (19 characters)"},
	{Low: 0x2190, High: 0x21FF, Name: "Arrows", Assigned: 112, Scripts: "Common"},
	{Low: 0x2200, High: 0x22FF, Name: "Mathematical Operators", Assigned: 256, Scripts: "Common"},
	{Low: 0x2300, High: 0x23FF, Name: "Miscellaneous Technical", Assigned: 256, Scripts: "Common"},
	{Low: 0x2400, High: 0x243F, Name: "Control Pictures", Assigned: 39, Scripts: "Common"},
	{Low: 0x2440, High: 0x245F, Name: "Optical Character Recognition", Assigned: 11, Scripts: "Common"},
	{Low: 0x2460, High: 0x24FF, Name: "Enclosed Alphanumerics", Assigned: 160, Scripts: "Common"},
	{Low: 0x2500, High: 0x257F, Name: "Box Drawing", Assigned: 128, Scripts: "Common"},
	{Low: 0x2580, High: 0x259F, Name: "Block Elements", Assigned: 32, Scripts: "Common"},
	{Low: 0x25A0, High: 0x25FF, Name: "Geometric Shapes", Assigned: 96, Scripts: "Common"},
	{Low: 0x2600, High: 0x26FF, Name: "Miscellaneous Symbols", Assigned: 256, Scripts: "Common"},
	{Low: 0x2700, High: 0x27BF, Name: "Dingbats", Assigned: 192, Scripts: "Common"},
	{Low: 0x27C0, High: 0x27EF, Name: "Miscellaneous Mathematical Symbols-A", Assigned: 48, Scripts: "Common"},
	{Low: 0x27F0, High: 0x27FF, Name: "Supplemental Arrows-A", Assigned: 16, Scripts: "Common"},
	{Low: 0x2800, High: 0x28FF, Name: "Braille Patterns", Assigned: 256, Scripts: "Braille"},
	{Low: 0x2900, High: 0x297F, Name: "Supplemental Arrows-B", Assigned: 128, Scripts: "Common"},
	{Low: 0x2980, High: 0x29FF, Name: "Miscellaneous Mathematical Symbols-B", Assigned: 128, Scripts: "Common"},
	{Low: 0x2A00, High: 0x2AFF, Name: "Supplemental Mathematical Operators", Assigned: 256, Scripts: "Common"},
	{Low: 0x2B00, High: 0x2BFF, Name: "Miscellaneous Symbols and Arrows", Assigned: 207, Scripts: "Common"},
	{Low: 0x2C00, High: 0x2C5F, Name: "Glagolitic", Assigned: 94, Scripts: "Glagolitic"},
	{Low: 0x2C60, High: 0x2C7F, Name: "Latin Extended-C", Assigned: 32, Scripts: "Latin"},
	{Low: 0x2C80, High: 0x2CFF, Name: "Coptic", Assigned: 123, Scripts: "Coptic"},
	{Low: 0x2D00, High: 0x2D2F, Name: "Georgian Supplement", Assigned: 40, Scripts: "Georgian"},
	{Low: 0x2D30, High: 0x2D7F, Name: "Tifinagh", Assigned: 59, Scripts: "Tifinagh"},
	{Low: 0x2D80, High: 0x2DDF, Name: "Ethiopic Extended", Assigned: 79, Scripts: "Ethiopic"},
	{Low: 0x2DE0, High: 0x2DFF, Name: "Cyrillic Extended-A", Assigned: 32, Scripts: "Cyrillic"},
	{Low: 0x2E00, High: 0x2E7F, Name: "Supplemental Punctuation", Assigned: 74, Scripts: "Common"},
	{Low: 0x2E80, High: 0x2EFF, Name: "CJK Radicals Supplement", Assigned: 115, Scripts: "Han"},
	{Low: 0x2F00, High: 0x2FDF, Name: "Kangxi Radicals", Assigned: 214, Scripts: "Han"},
	{Low: 0x2FF0, High: 0x2FFF, Name: "Ideographic Description Characters", Assigned: 12, Scripts: "Common"},
	{Low: 0x3000, High: 0x303F, Name: "CJK Symbols and Punctuation", Assigned: 64, Scripts: "Han (15 characters), Hangul (2 characters), Common (43 characters), Inherited (4 characters)"},
	{Low: 0x3040, High: 0x309F, Name: "Hiragana", Assigned: 93, Scripts: "Hiragana (89 characters), Common (2 characters), Inherited (2 characters)"},
	{Low: 0x30A0, High: 0x30FF, Name: "Katakana", Assigned: 96, Scripts: "Katakana (93 characters), Common (3 characters)"},
	{Low: 0x3100, High: 0x312F, Name: "Bopomofo", Assigned: 42, Scripts: "Bopomofo"},
	{Low: 0x3130, High: 0x318F, Name: "Hangul Compatibility Jamo", Assigned: 94, Scripts: "Hangul"},
	{Low: 0x3190, High: 0x319F, Name: "Kanbun", Assigned: 16, Scripts: "Common"},
	{Low: 0x31A0, High: 0x31BF, Name: "Bopomofo Extended", Assigned: 27, Scripts: "Bopomofo"},
	{Low: 0x31C0, High: 0x31EF, Name: "CJK Strokes", Assigned: 36, Scripts: "Common"},
	{Low: 0x31F0, High: 0x31FF, Name: "Katakana Phonetic Extensions", Assigned: 16, Scripts: "Katakana"},
	{Low: 0x3200, High: 0x32FF, Name: "Enclosed CJK Letters and Months", Assigned: 254, Scripts: "Hangul (62 characters), Katakana (47 characters), Common (145 characters)"},
	{Low: 0x3300, High: 0x33FF, Name: "CJK Compatibility", Assigned: 256, Scripts: "Katakana (88 characters), Common (168 characters)"},
	{Low: 0x3400, High: 0x4DBF, Name: "CJK Unified Ideographs Extension A", Assigned: 6582, Scripts: "Han"},
	{Low: 0x4DC0, High: 0x4DFF, Name: "Yijing Hexagram Symbols", Assigned: 64, Scripts: "Common"},
	{Low: 0x4E00, High: 0x9FFF, Name: "CJK Unified Ideographs", Assigned: 20971, Scripts: "Han"},
	{Low: 0xA000, High: 0xA48F, Name: "Yi Syllables", Assigned: 1165, Scripts: "Yi"},
	{Low: 0xA490, High: 0xA4CF, Name: "Yi Radicals", Assigned: 55, Scripts: "Yi"},
	{Low: 0xA4D0, High: 0xA4FF, Name: "Lisu", Assigned: 48, Scripts: "Lisu"},
	{Low: 0xA500, High: 0xA63F, Name: "Vai", Assigned: 300, Scripts: "Vai"},
	{Low: 0xA640, High: 0xA69F, Name: "Cyrillic Extended-B", Assigned: 96, Scripts: "Cyrillic"},
	{Low: 0xA6A0, High: 0xA6FF, Name: "Bamum", Assigned: 88, Scripts: "Bamum"},
	{Low: 0xA700, High: 0xA71F, Name: "Modifier Tone Letters", Assigned: 32, Scripts: "Common"},
	{Low: 0xA720, High: 0xA7FF, Name: "Latin Extended-D", Assigned: 160, Scripts: "Latin (155 characters), Common (5 characters)"},
	{Low: 0xA800, High: 0xA82F, Name: "Syloti Nagri", Assigned: 44, Scripts: "Syloti Nagri"},
	{Low: 0xA830, High: 0xA83F, Name: "Common Indic Number Forms", Assigned: 10, Scripts: "Common"},
	{Low: 0xA840, High: 0xA87F, Name: "Phags-pa", Assigned: 56, Scripts: "Phags Pa"},
	{Low: 0xA880, High: 0xA8DF, Name: "Saurashtra", Assigned: 82, Scripts: "Saurashtra"},
	{Low: 0xA8E0, High: 0xA8FF, Name: "Devanagari Extended", Assigned: 30, Scripts: "Devanagari"},
	{Low: 0xA900, High: 0xA92F, Name: "Kayah Li", Assigned: 48, Scripts: "Kayah Li (47 characters), Common (1 character)"},
	{Low: 0xA930, High: 0xA95F, Name: "Rejang", Assigned: 37, Scripts: "Rejang"},
	{Low: 0xA960, High: 0xA97F, Name: "Hangul Jamo Extended-A", Assigned: 29, Scripts: "Hangul"},
	{Low: 0xA980, High: 0xA9DF, Name: "Javanese", Assigned: 91, Scripts: "Javanese (90 characters), Common (1 character)"},
	{Low: 0xA9E0, High: 0xA9FF, Name: "Myanmar Extended-B", Assigned: 31, Scripts: "Myanmar"},
	{Low: 0xAA00, High: 0xAA5F, Name: "Cham", Assigned: 83, Scripts: "Cham"},
	{Low: 0xAA60, High: 0xAA7F, Name: "Myanmar Extended-A", Assigned: 32, Scripts: "Myanmar"},
	{Low: 0xAA80, High: 0xAADF, Name: "Tai Viet", Assigned: 72, Scripts: "Tai Viet"},
	{Low: 0xAAE0, High: 0xAAFF, Name: "Meetei Mayek Extensions", Assigned: 23, Scripts: "Meetei Mayek"},
	{Low: 0xAB00, High: 0xAB2F, Name: "Ethiopic Extended-A", Assigned: 32, Scripts: "Ethiopic"},
	{Low: 0xAB30, High: 0xAB6F, Name: "Latin Extended-E", Assigned: 54, Scripts: "Latin (52 characters), Greek (1 character), Common (1 character)"},
	{Low: 0xAB70, High: 0xABBF, Name: "Cherokee Supplement", Assigned: 80, Scripts: "Cherokee"},
	{Low: 0xABC0, High: 0xABFF, Name: "Meetei Mayek", Assigned: 56, Scripts: "Meetei Mayek"},
	{Low: 0xAC00, High: 0xD7AF, Name: "Hangul Syllables", Assigned: 11172, Scripts: "Hangul"},
	{Low: 0xD7B0, High: 0xD7FF, Name: "Hangul Jamo Extended-B", Assigned: 72, Scripts: "Hangul"},
	{Low: 0xD800, High: 0xDB7F, Name: "High Surrogates", Assigned: 0, Scripts: "Unknown"},
	{Low: 0xDB80, High: 0xDBFF, Name: "High Private Use Surrogates", Assigned: 0, Scripts: "Unknown"},
	{Low: 0xDC00, High: 0xDFFF, Name: "Low Surrogates", Assigned: 0, Scripts: "Unknown"},
	{Low: 0xE000, High: 0xF8FF, Name: "Private Use Area", Assigned: 6400, Scripts: "Unknown"},
	{Low: 0xF900, High: 0xFAFF, Name: "CJK Compatibility Ideographs", Assigned: 472, Scripts: "Han"},
	{Low: 0xFB00, High: 0xFB4F, Name: "Alphabetic Presentation Forms", Assigned: 58, Scripts: "Armenian (5 characters), Hebrew (46 characters), Latin (7 characters)"},
	{Low: 0xFB50, High: 0xFDFF, Name: "Arabic Presentation Forms-A", Assigned: 611, Scripts: "Arabic (609 characters), Common (2 characters)"},
	{Low: 0xFE00, High: 0xFE0F, Name: "Variation Selectors", Assigned: 16, Scripts: "Inherited"},
	{Low: 0xFE10, High: 0xFE1F, Name: "Vertical Forms", Assigned: 10, Scripts: "Common"},
	{Low: 0xFE20, High: 0xFE2F, Name: "Combining Half Marks", Assigned: 16, Scripts: "Cyrillic (2 characters), Inherited (14 characters)"},
	{Low: 0xFE30, High: 0xFE4F, Name: "CJK Compatibility Forms", Assigned: 32, Scripts: "Common"},
	{Low: 0xFE50, High: 0xFE6F, Name: "Small Form Variants", Assigned: 26, Scripts: "Common"},
	{Low: 0xFE70, High: 0xFEFF, Name: "Arabic Presentation Forms-B", Assigned: 141, Scripts: "Arabic (140 characters), Common (1 character)"},
	{Low: 0xFF00, High: 0xFFEF, Name: "Halfwidth and Fullwidth Forms", Assigned: 225, Scripts: "Hangul (52 characters), Katakana (55 characters), Latin (52 characters), Common (66 characters)"},
	{Low: 0xFFF0, High: 0xFFFF, Name: "Specials", Assigned: 5, Scripts: "Common"},
	{Low: 0x10000, High: 0x1007F, Name: "Linear B Syllabary", Assigned: 88, Scripts: "Linear B"},
	{Low: 0x10080, High: 0x100FF, Name: "Linear B Ideograms", Assigned: 123, Scripts: "Linear B"},
	{Low: 0x10100, High: 0x1013F, Name: "Aegean Numbers", Assigned: 57, Scripts: "Common"},
	{Low: 0x10140, High: 0x1018F, Name: "Ancient Greek Numbers", Assigned: 79, Scripts: "Greek"},
	{Low: 0x10190, High: 0x101CF, Name: "Ancient Symbols", Assigned: 13, Scripts: "Greek (1 character), Common (12 characters)"},
	{Low: 0x101D0, High: 0x101FF, Name: "Phaistos Disc", Assigned: 46, Scripts: "Common (45 characters), Inherited (1 character)"},
	{Low: 0x10280, High: 0x1029F, Name: "Lycian", Assigned: 29, Scripts: "Lycian"},
	{Low: 0x102A0, High: 0x102DF, Name: "Carian", Assigned: 49, Scripts: "Carian"},
	{Low: 0x102E0, High: 0x102FF, Name: "Coptic Epact Numbers", Assigned: 28, Scripts: "Common (27 characters), Inherited (1 character)"},
	{Low: 0x10300, High: 0x1032F, Name: "Old Italic", Assigned: 39, Scripts: "Old Italic"},
	{Low: 0x10330, High: 0x1034F, Name: "Gothic", Assigned: 27, Scripts: "Gothic"},
	{Low: 0x10350, High: 0x1037F, Name: "Old Permic", Assigned: 43, Scripts: "Old Permic"},
	{Low: 0x10380, High: 0x1039F, Name: "Ugaritic", Assigned: 31, Scripts: "Ugaritic"},
	{Low: 0x103A0, High: 0x103DF, Name: "Old Persian", Assigned: 50, Scripts: "Old Persian"},
	{Low: 0x10400, High: 0x1044F, Name: "Deseret", Assigned: 80, Scripts: "Deseret"},
	{Low: 0x10450, High: 0x1047F, Name: "Shavian", Assigned: 48, Scripts: "Shavian"},
	{Low: 0x10480, High: 0x104AF, Name: "Osmanya", Assigned: 40, Scripts: "Osmanya"},
	{Low: 0x104B0, High: 0x104FF, Name: "Osage", Assigned: 72, Scripts: "Osage"},
	{Low: 0x10500, High: 0x1052F, Name: "Elbasan", Assigned: 40, Scripts: "Elbasan"},
	{Low: 0x10530, High: 0x1056F, Name: "Caucasian Albanian", Assigned: 53, Scripts: "Caucasian Albanian"},
	{Low: 0x10600, High: 0x1077F, Name: "Linear A", Assigned: 341, Scripts: "Linear A"},
	{Low: 0x10800, High: 0x1083F, Name: "Cypriot Syllabary", Assigned: 55, Scripts: "Cypriot"},
	{Low: 0x10840, High: 0x1085F, Name: "Imperial Aramaic", Assigned: 31, Scripts: "Imperial Aramaic"},
	{Low: 0x10860, High: 0x1087F, Name: "Palmyrene", Assigned: 32, Scripts: "Palmyrene"},
	{Low: 0x10880, High: 0x108AF, Name: "Nabataean", Assigned: 40, Scripts: "Nabataean"},
	{Low: 0x108E0, High: 0x108FF, Name: "Hatran", Assigned: 26, Scripts: "Hatran"},
	{Low: 0x10900, High: 0x1091F, Name: "Phoenician", Assigned: 29, Scripts: "Phoenician"},
	{Low: 0x10920, High: 0x1093F, Name: "Lydian", Assigned: 27, Scripts: "Lydian"},
	{Low: 0x10980, High: 0x1099F, Name: "Meroitic Hieroglyphs", Assigned: 32, Scripts: "Meroitic Hieroglyphs"},
	{Low: 0x109A0, High: 0x109FF, Name: "Meroitic Cursive", Assigned: 90, Scripts: "Meroitic Cursive"},
	{Low: 0x10A00, High: 0x10A5F, Name: "Kharoshthi", Assigned: 65, Scripts: "Kharoshthi"},
	{Low: 0x10A60, High: 0x10A7F, Name: "Old South Arabian", Assigned: 32, Scripts: "Old South Arabian"},
	{Low: 0x10A80, High: 0x10A9F, Name: "Old North Arabian", Assigned: 32, Scripts: "Old North Arabian"},
	{Low: 0x10AC0, High: 0x10AFF, Name: "Manichaean", Assigned: 51, Scripts: "Manichaean"},
	{Low: 0x10B00, High: 0x10B3F, Name: "Avestan", Assigned: 61, Scripts: "Avestan"},
	{Low: 0x10B40, High: 0x10B5F, Name: "Inscriptional Parthian", Assigned: 30, Scripts: "Inscriptional Parthian"},
	{Low: 0x10B60, High: 0x10B7F, Name: "Inscriptional Pahlavi", Assigned: 27, Scripts: "Inscriptional Pahlavi"},
	{Low: 0x10B80, High: 0x10BAF, Name: "Psalter Pahlavi", Assigned: 29, Scripts: "Psalter Pahlavi"},
	{Low: 0x10C00, High: 0x10C4F, Name: "Old Turkic", Assigned: 73, Scripts: "Old Turkic"},
	{Low: 0x10C80, High: 0x10CFF, Name: "Old Hungarian", Assigned: 108, Scripts: "Old Hungarian"},
	{Low: 0x10E60, High: 0x10E7F, Name: "Rumi Numeral Symbols", Assigned: 31, Scripts: "Arabic"},
	{Low: 0x11000, High: 0x1107F, Name: "Brahmi", Assigned: 109, Scripts: "Brahmi"},
	{Low: 0x11080, High: 0x110CF, Name: "Kaithi", Assigned: 66, Scripts: "Kaithi"},
	{Low: 0x110D0, High: 0x110FF, Name: "Sora Sompeng", Assigned: 35, Scripts: "Sora Sompeng"},
	{Low: 0x11100, High: 0x1114F, Name: "Chakma", Assigned: 67, Scripts: "Chakma"},
	{Low: 0x11150, High: 0x1117F, Name: "Mahajani", Assigned: 39, Scripts: "Mahajani"},
	{Low: 0x11180, High: 0x111DF, Name: "Sharada", Assigned: 94, Scripts: "Sharada"},
	{Low: 0x111E0, High: 0x111FF, Name: "Sinhala Archaic Numbers", Assigned: 20, Scripts: "Sinhala"},
	{Low: 0x11200, High: 0x1124F, Name: "Khojki", Assigned: 62, Scripts: "Khojki"},
	{Low: 0x11280, High: 0x112AF, Name: "Multani", Assigned: 38, Scripts: "Multani"},
	{Low: 0x112B0, High: 0x112FF, Name: "Khudawadi", Assigned: 69, Scripts: "Khudawadi"},
	{Low: 0x11300, High: 0x1137F, Name: "Grantha", Assigned: 85, Scripts: "Grantha"},
	{Low: 0x11400, High: 0x1147F, Name: "Newa", Assigned: 92, Scripts: "Newa"},
	{Low: 0x11480, High: 0x114DF, Name: "Tirhuta", Assigned: 82, Scripts: "Tirhuta"},
	{Low: 0x11580, High: 0x115FF, Name: "Siddham", Assigned: 92, Scripts: "Siddham"},
	{Low: 0x11600, High: 0x1165F, Name: "Modi", Assigned: 79, Scripts: "Modi"},
	{Low: 0x11660, High: 0x1167F, Name: "Mongolian Supplement", Assigned: 13, Scripts: "Mongolian"},
	{Low: 0x11680, High: 0x116CF, Name: "Takri", Assigned: 66, Scripts: "Takri"},
	{Low: 0x11700, High: 0x1173F, Name: "Ahom", Assigned: 57, Scripts: "Ahom"},
	{Low: 0x118A0, High: 0x118FF, Name: "Warang Citi", Assigned: 84, Scripts: "Warang Citi"},
	{Low: 0x11A00, High: 0x11A4F, Name: "Zanabazar Square", Assigned: 72, Scripts: "Zanabazar Square"},
	{Low: 0x11A50, High: 0x11AAF, Name: "Soyombo", Assigned: 80, Scripts: "Soyombo"},
	{Low: 0x11AC0, High: 0x11AFF, Name: "Pau Cin Hau", Assigned: 57, Scripts: "Pau Cin Hau"},
	{Low: 0x11C00, High: 0x11C6F, Name: "Bhaiksuki", Assigned: 97, Scripts: "Bhaiksuki"},
	{Low: 0x11C70, High: 0x11CBF, Name: "Marchen", Assigned: 68, Scripts: "Marchen"},
	{Low: 0x11D00, High: 0x11D5F, Name: "Masaram Gondi", Assigned: 75, Scripts: "Masaram Gondi"},
	{Low: 0x12000, High: 0x123FF, Name: "Cuneiform", Assigned: 922, Scripts: "Cuneiform"},
	{Low: 0x12400, High: 0x1247F, Name: "Cuneiform Numbers and Punctuation", Assigned: 116, Scripts: "Cuneiform"},
	{Low: 0x12480, High: 0x1254F, Name: "Early Dynastic Cuneiform", Assigned: 196, Scripts: "Cuneiform"},
	{Low: 0x13000, High: 0x1342F, Name: "Egyptian Hieroglyphs", Assigned: 1071, Scripts: "Egyptian Hieroglyphs"},
	{Low: 0x14400, High: 0x1467F, Name: "Anatolian Hieroglyphs", Assigned: 583, Scripts: "Anatolian Hieroglyphs"},
	{Low: 0x16800, High: 0x16A3F, Name: "Bamum Supplement", Assigned: 569, Scripts: "Bamum"},
	{Low: 0x16A40, High: 0x16A6F, Name: "Mro", Assigned: 43, Scripts: "Mro"},
	{Low: 0x16AD0, High: 0x16AFF, Name: "Bassa Vah", Assigned: 36, Scripts: "Bassa Vah"},
	{Low: 0x16B00, High: 0x16B8F, Name: "Pahawh Hmong", Assigned: 127, Scripts: "Pahawh Hmong"},
	{Low: 0x16F00, High: 0x16F9F, Name: "Miao", Assigned: 133, Scripts: "Miao"},
	{Low: 0x16FE0, High: 0x16FFF, Name: "Ideographic Symbols and Punctuation", Assigned: 2, Scripts: "Nushu (1 character), Tangut (1 character)"},
	{Low: 0x17000, High: 0x187FF, Name: "Tangut", Assigned: 6125, Scripts: "Tangut"},
	{Low: 0x18800, High: 0x18AFF, Name: "Tangut Components", Assigned: 755, Scripts: "Tangut"},
	{Low: 0x1B000, High: 0x1B0FF, Name: "Kana Supplement", Assigned: 256, Scripts: "Hiragana (255 characters), Katakana (1 character)"},
	{Low: 0x1B100, High: 0x1B12F, Name: "Kana Extended-A", Assigned: 31, Scripts: "Hiragana"},
	{Low: 0x1B170, High: 0x1B2FF, Name: "Nushu", Assigned: 396, Scripts: "Nüshu"},
	{Low: 0x1BC00, High: 0x1BC9F, Name: "Duployan", Assigned: 143, Scripts: "Duployan"},
	{Low: 0x1BCA0, High: 0x1BCAF, Name: "Shorthand Format Controls", Assigned: 4, Scripts: "Common"},
	{Low: 0x1D000, High: 0x1D0FF, Name: "Byzantine Musical Symbols", Assigned: 246, Scripts: "Common"},
	{Low: 0x1D100, High: 0x1D1FF, Name: "Musical Symbols", Assigned: 231, Scripts: "Common (209 characters), Inherited (22 characters)"},
	{Low: 0x1D200, High: 0x1D24F, Name: "Ancient Greek Musical Notation", Assigned: 70, Scripts: "Greek"},
	{Low: 0x1D300, High: 0x1D35F, Name: "Tai Xuan Jing Symbols", Assigned: 87, Scripts: "Common"},
	{Low: 0x1D360, High: 0x1D37F, Name: "Counting Rod Numerals", Assigned: 18, Scripts: "Common"},
	{Low: 0x1D400, High: 0x1D7FF, Name: "Mathematical Alphanumeric Symbols", Assigned: 996, Scripts: "Common"},
	{Low: 0x1D800, High: 0x1DAAF, Name: "Sutton SignWriting", Assigned: 672, Scripts: "SignWriting"},
	{Low: 0x1E000, High: 0x1E02F, Name: "Glagolitic Supplement", Assigned: 38, Scripts: "Glagolitic"},
	{Low: 0x1E800, High: 0x1E8DF, Name: "Mende Kikakui", Assigned: 213, Scripts: "Mende Kikakui"},
	{Low: 0x1E900, High: 0x1E95F, Name: "Adlam", Assigned: 87, Scripts: "Adlam"},
	{Low: 0x1EE00, High: 0x1EEFF, Name: "Arabic Mathematical Alphabetic Symbols", Assigned: 143, Scripts: "Arabic"},
	{Low: 0x1F000, High: 0x1F02F, Name: "Mahjong Tiles", Assigned: 44, Scripts: "Common"},
	{Low: 0x1F030, High: 0x1F09F, Name: "Domino Tiles", Assigned: 100, Scripts: "Common"},
	{Low: 0x1F0A0, High: 0x1F0FF, Name: "Playing Cards", Assigned: 82, Scripts: "Common"},
	{Low: 0x1F100, High: 0x1F1FF, Name: "Enclosed Alphanumeric Supplement", Assigned: 191, Scripts: "Common"},
	{Low: 0x1F200, High: 0x1F2FF, Name: "Enclosed Ideographic Supplement", Assigned: 64, Scripts: "Hiragana (1 character), Common (63 characters)"},
	{Low: 0x1F300, High: 0x1F5FF, Name: "Miscellaneous Symbols and Pictographs", Assigned: 768, Scripts: "Common"},
	{Low: 0x1F600, High: 0x1F64F, Name: "Emoticons", Assigned: 80, Scripts: "Common"},
	{Low: 0x1F650, High: 0x1F67F, Name: "Ornamental Dingbats", Assigned: 48, Scripts: "Common"},
	{Low: 0x1F680, High: 0x1F6FF, Name: "Transport and Map Symbols", Assigned: 107, Scripts: "Common"},
	{Low: 0x1F700, High: 0x1F77F, Name: "Alchemical Symbols", Assigned: 116, Scripts: "Common"},
	{Low: 0x1F780, High: 0x1F7FF, Name: "Geometric Shapes Extended", Assigned: 85, Scripts: "Common"},
	{Low: 0x1F800, High: 0x1F8FF, Name: "Supplemental Arrows-C", Assigned: 148, Scripts: "Common"},
	{Low: 0x1F900, High: 0x1F9FF, Name: "Supplemental Symbols and Pictographs", Assigned: 148, Scripts: "Common"},
	{Low: 0x20000, High: 0x2A6DF, Name: "CJK Unified Ideographs Extension B", Assigned: 42711, Scripts: "Han"},
	{Low: 0x2A700, High: 0x2B73F, Name: "CJK Unified Ideographs Extension C", Assigned: 4149, Scripts: "Han"},
	{Low: 0x2B740, High: 0x2B81F, Name: "CJK Unified Ideographs Extension D", Assigned: 222, Scripts: "Han"},
	{Low: 0x2B820, High: 0x2CEAF, Name: "CJK Unified Ideographs Extension E", Assigned: 5762, Scripts: "Han"},
	{Low: 0x2CEB0, High: 0x2EBEF, Name: "CJK Unified Ideographs Extension F", Assigned: 7473, Scripts: "Han"},
	{Low: 0x2F800, High: 0x2FA1F, Name: "CJK Compatibility Ideographs Supplement", Assigned: 542, Scripts: "Han"},
	{Low: 0xE0000, High: 0xE007F, Name: "Tags", Assigned: 97, Scripts: "Common"},
	{Low: 0xE0100, High: 0xE01EF, Name: "Variation Selectors Supplement", Assigned: 240, Scripts: "Inherited"},
	{Low: 0xF0000, High: 0xFFFFF, Name: "Supplementary Private Use Area-A", Assigned: 65534, Scripts: "Unknown"},
	{Low: 0x100000, High: 0x10FFFF, Name: "Supplementary Private Use Area-B", Assigned: 65534, Scripts: "Unknown"},
}
