package render

import scholarfolio "github.com/scholarfolio/scholarfolio"

// Theme bundles the class sets one theme contributes. The renderer
// only ever selects from this table; no per-theme branching beyond the
// lookup.
type Theme struct {
	Container      string
	Header         string
	SectionHeading string
}

const themeBase = "w-full transition-all duration-700 min-h-[85vh] "

var themes = map[scholarfolio.ThemeID]Theme{
	scholarfolio.Theme1: {
		Container:      themeBase + "bg-white p-24 rounded-[80px] shadow-2xl border-t-[12px]",
		Header:         "mb-32 flex flex-col gap-8 items-start pb-20 border-b-2 border-slate-100",
		SectionHeading: headingBase + "border-b-4 border-slate-900 pb-2 uppercase text-slate-900",
	},
	scholarfolio.Theme2: {
		Container:      themeBase + "bg-white p-20 border border-slate-100 shadow-none font-serif",
		Header:         "mb-32 flex flex-col items-center text-center gap-12 pb-20 border-b border-slate-100",
		SectionHeading: headingBase + "font-serif italic border-b border-slate-200 pb-1 text-3xl justify-center text-slate-800",
	},
	scholarfolio.Theme3: {
		Container:      themeBase + "bg-[#f8f9fa] p-24 border-l-[32px]",
		Header:         "mb-32 bg-white p-12 -mx-24 -mt-24 shadow-sm flex flex-col gap-10 items-start",
		SectionHeading: headingBase + "bg-slate-800 text-white px-6 py-3 rounded-r-lg -ml-24 shadow-md w-fit",
	},
	scholarfolio.Theme4: {
		Container:      themeBase + "bg-slate-50 p-16 rounded-[48px] shadow-sm",
		Header:         "mb-20 flex flex-col gap-10 items-start bg-white/80 backdrop-blur p-8 rounded-3xl shadow-sm sticky top-0 z-50",
		SectionHeading: headingBase + "text-slate-900/40 uppercase tracking-[0.3em] text-xs font-black border-none",
	},
	scholarfolio.Theme5: {
		Container:      themeBase + "bg-white p-24 border-x-[1px] border-slate-200 max-w-7xl mx-auto shadow-sm",
		Header:         "mb-32 flex flex-col items-start gap-12 pb-20 border-b-[6px] border-slate-900",
		SectionHeading: headingBase + "text-4xl font-serif text-slate-900 border-l-[12px] pl-6",
	},
	scholarfolio.Theme6: {
		Container:      themeBase + "bg-[#fffcf9] p-20 shadow-sm border-t-[8px]",
		Header:         "mb-32 flex flex-col gap-10 items-start pb-12 border-b-2 border-slate-900",
		SectionHeading: headingBase + "bg-slate-100 text-slate-900 px-4 py-1 text-lg uppercase tracking-widest border-l-4 border-slate-900",
	},
	scholarfolio.Theme7: {
		Container:      themeBase + "bg-[#fdfbf7] p-24 font-serif text-slate-900",
		Header:         "mb-32 flex flex-col gap-16 border-l-[1px] border-slate-900 pl-12 items-start",
		SectionHeading: headingBase + "text-5xl font-serif font-light italic border-b-[1px] border-slate-900/20 w-full pb-4",
	},
	scholarfolio.Theme8: {
		Container:      themeBase + "bg-white p-12 md:p-20 shadow-sm rounded-none font-sans border-t-[20px]",
		Header:         "mb-32 flex flex-col justify-between items-start gap-12 pb-16 border-b border-slate-100",
		SectionHeading: "text-xs font-black uppercase tracking-[0.6em] text-slate-400 mb-10 w-full flex items-center gap-6 after:content-[''] after:h-[1px] after:flex-1 after:bg-slate-100",
	},
}

const headingBase = "text-2xl font-black mb-8 tracking-tighter flex items-center gap-4 "

var defaultTheme = Theme{
	Container:      themeBase + "bg-white p-24",
	Header:         "mb-32 flex flex-col gap-12 items-start",
	SectionHeading: headingBase,
}

// ThemeFor returns the style descriptor for a theme id, falling back
// to the plain variant for unknown ids.
func ThemeFor(id scholarfolio.ThemeID) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return defaultTheme
}
