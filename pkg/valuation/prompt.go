package valuation

import "fmt"

const systemPrompt = "You are a domain valuation expert. Always respond with valid JSON only, no markdown, no explanations, just the JSON object."

const priceEstimateContext = "Please estimate a fair market price for this domain in ETH based on its characteristics."

const knownPriceContext = "A market price is already known for this domain, so you may omit the estimatedPrice field."

// buildPrompt renders the valuation prompt for a domain. estimatePrice
// controls whether the provider is asked to produce an estimatedPrice field;
// callers that already hold a listing price pass false.
func buildPrompt(domainName string, estimatePrice bool) string {
	priceContext := priceEstimateContext
	if !estimatePrice {
		priceContext = knownPriceContext
	}

	return fmt.Sprintf(`You are an expert domain valuation specialist with deep knowledge of domain markets, brand value, and web traffic patterns.

Analyze the domain %q %s.

IMPORTANT CONTEXT:
- Consider if this domain is associated with a well-known brand, company, or service (e.g., google, amazon, microsoft, openai, etc.)
- For established brands: estimate MUCH HIGHER prices (10-1000+ ETH) and very high traffic (millions of visits)
- For generic premium keywords (e.g., ai, tech, shop, app): estimate high prices (1-50 ETH) and significant traffic
- For new/unknown domains: use standard market pricing based on characteristics

Provide a detailed analysis in JSON format with the following structure:

{
  "valueHistory": [6 months of historical value data with months (Mar, Apr, May, Jun, Jul, Aug). Show DYNAMIC changes - not linear growth. For established brands use millions with 5-15%% fluctuations. For premium domains use hundreds of thousands with realistic market volatility (up 20%%, down 10%%, up 15%%, etc.). For standard domains show natural price discovery with ups and downs.],
  "trafficData": [6 months of estimated traffic data with months and visit counts. Show REALISTIC GROWTH with ups and downs - not linear. For major brands use MILLIONS (e.g., 150M-200M monthly with 10-20M variations). For popular domains use hundreds of thousands with 20-40%% month-to-month variation. For new/small domains (1K-50K) show volatile growth like 1.2K, 3.5K, 2.8K, 5.1K, 4.3K, 7.2K - mix growth spurts with dips.],
  "seoMetrics": [
    {"label": "Domain Authority", "score": 0-100, "max": 100},
    {"label": "Page Authority", "score": 0-100, "max": 100},
    {"label": "Trust Score", "score": 0-100, "max": 100},
    {"label": "Spam Score", "score": 0-100, "max": 100, "inverse": true}
  ],
  "keywordData": [
    {"keyword": "5-10 exact or similar keyword phrase", "volume": monthly search volume as number (estimate 1000-50000+ for popular keywords, 100-1000 for niche), "difficulty": 0-100}
  ],
  "features": [
    {"label": "Short & Memorable", "available": boolean},
    {"label": "Easy to Spell", "available": boolean},
    {"label": "Brandable", "available": boolean},
    {"label": "SEO Friendly", "available": boolean},
    {"label": "No Hyphens", "available": boolean},
    {"label": "No Numbers", "available": boolean},
    {"label": "Premium TLD", "available": boolean},
    {"label": "Social Media Available", "available": boolean}
  ],
  "marketScore": 1-10 rating (well-known brands should score 9-10, premium keywords 7-9, good domains 5-7, standard 3-5, poor 1-3),
  "estimatedGrowth": "+XX%%" string,
  "searchVolume": string for monthly searches (use K for thousands, M for millions - e.g., "1.2M" for 1.2 million searches/month for popular brands),
  "domainAge": number of years,
  "registrationYear": year like 2015,
  "summary": "2-3 sentence summary about the domain's value proposition. For well-known brands, mention the brand recognition and market position. For new domains, focus on potential.",
  "estimatedPrice": estimated fair market value in ETH (only if price estimation is needed, otherwise omit this field)
}

CRITICAL VALUATION FACTORS:

1. BRAND RECOGNITION:
   - Established major brands (Google, Amazon, Microsoft, Apple, Meta, etc.): 100-10,000+ ETH
   - Well-known tech companies or services (OpenAI, GitHub, Stripe, etc.): 50-500 ETH
   - Popular generic tech keywords (AI, Cloud, Crypto, Tech, App, etc.): 10-100 ETH
   - Brandable but unknown domains: Use length/quality based pricing below

2. DOMAIN CHARACTERISTICS:
   - Ultra-premium (1-2 chars, major brand): 1000-10000 ETH
   - Super premium (3-4 chars, high-value keyword .com/.ai): 100-500 ETH
   - Premium short (5-6 chars, good keyword, .io): 20-100 ETH
   - Good brandable (6-8 chars, memorable): 1-20 ETH
   - Standard domains (9+ chars or non-premium TLD): 0.19-5 ETH
   - Low value (hyphens, numbers, long, poor TLD): 0.015-0.15 ETH

3. TLD VALUE MULTIPLIERS:
   - .com: 1.5x-3x (highest value, universal appeal)
   - .ai, .xyz, .ape, .shib: 2x-5x for AI-related brands (extremely hot in 2024-2025)
   - .io: 1.5x-2x for tech companies
   - .app, .tech: 0.7x-1.2x
   - Others: 0.3x-0.8x

4. TRAFFIC ESTIMATION:
   - Global mega-brands (Google, Facebook, Amazon): 100M-500M+ monthly visits
   - Major tech platforms (GitHub, OpenAI, Stripe): 10M-100M monthly visits
   - Popular services/tools: 500K-10M monthly visits
   - Niche established sites: 50K-500K monthly visits
   - New/unknown domains: 0-50K monthly visits

5. SEO METRICS:
   - Major brands: Domain Authority 90-100, very high trust scores
   - Established sites: Domain Authority 60-89
   - New domains: Domain Authority 0-30

CRITICAL INSTRUCTION: You MUST provide "estimatedPrice" in ETH when price estimation is needed.
- Think carefully: Is this a well-known brand? Price accordingly (10-10000+ ETH)
- Is this a premium generic keyword? Price high (1-100 ETH)
- Is this a new/unknown domain? Use characteristic-based pricing (0.005-5 ETH)
- ALWAYS consider real-world domain sales and current market conditions
- The .ai TLD is EXTREMELY valuable in 2024-2025 for AI-related domains
Return ONLY valid JSON, no additional text.`, domainName, priceContext)
}
