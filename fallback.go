package rdbrain

// fallbackMarketContext is static demo market context substituted when live
// search comes back empty. It is pinned to one historical intake scenario
// (automotive heat-resistant resin) and is not production fallback knowledge.
const fallbackMarketContext = `Market context (static reference data):
- Automotive OEMs are replacing metal intake and cooling components with heat-resistant engineering plastics to cut weight; sustained service temperatures of 150C and higher are a common requirement.
- Heat-resistant polyamide PA9T competes with PA6T grades and with PPS in this segment. PA9T holds an advantage in low water absorption and dimensional stability; PPS leads in chemical resistance but is more brittle.
- Major competitors in heat-resistant polyamides include Toray (PA6T), Solvay (PPA) and DSM (PA46); Toray has been expanding PA6T capacity for automotive electrification programs.
- The market for high-heat polymers in electrified powertrains and battery peripherals has been growing at roughly double-digit rates, driven by 800V platforms and tighter under-hood packaging.
- Regulatory pressure on PFAS-based materials is pushing OEMs to re-evaluate fluoropolymer usage, opening substitution opportunities for high-performance polyamides and polyketones.`
