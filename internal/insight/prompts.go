package insight

import (
	"fmt"
	"strings"
)

func recruitCreatorsPrompt(city string) string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Suggest 5 to 8 local food content creators based in %s as a JSON array.\n\n", city))
	builder.WriteString("Each element must contain:\n")
	builder.WriteString("- name\n")
	builder.WriteString("- instagramHandle, formatted as @username\n")
	builder.WriteString("- followers, formatted like \"14.2K\" and between 8K and 25K\n")
	builder.WriteString("- engagementRate, formatted like \"7.5%\" and between 5% and 10%\n")
	builder.WriteString("- fitReason, two or three sentences on why they suit a food discovery app\n")
	builder.WriteString("- initial, the first letters of their first and last name, e.g. \"SM\"\n\n")
	builder.WriteString("Keep the profiles realistic and diverse.\n")
	builder.WriteString("Respond with the JSON array only.")
	return builder.String()
}

func analyzeGapsPrompt() string {
	builder := strings.Builder{}
	builder.WriteString("List 8 to 10 US cities from different regions with their content coverage on a food discovery platform, as a JSON array.\n\n")
	builder.WriteString("Each element must contain:\n")
	builder.WriteString("- city\n")
	builder.WriteString("- state, as a two letter code\n")
	builder.WriteString("- coverage, a number from 20 to 85\n")
	builder.WriteString("- priority, \"High\" below 40, \"Medium\" from 40 to 70, \"Low\" above 70\n")
	builder.WriteString("- missingCategories, an array of 1 to 3 food categories such as \"Breakfast\", \"Coffee Shops\" or \"BBQ\"\n\n")
	builder.WriteString("Respond with the JSON array only.")
	return builder.String()
}

func generateViralPrompt(userName string, cities []string, cuisine string) string {
	builder := strings.Builder{}
	builder.WriteString("Write shareable social media content for a food explorer.\n\n")
	builder.WriteString(fmt.Sprintf("Explorer: %s\n", userName))
	builder.WriteString(fmt.Sprintf("Cities visited: %s (%d cities)\n", cityList(cities), len(cities)))
	builder.WriteString(fmt.Sprintf("Favourite cuisine: %s\n\n", cuisine))
	builder.WriteString("Produce a JSON object with:\n")
	builder.WriteString("- caption: three or four paragraphs about their food journey, with emojis and hashtags\n")
	builder.WriteString("- badges: three or four achievement badges, each with name (e.g. \"Ramen Hunter\"), a food emoji and color as a Tailwind gradient such as \"from-orange-400 to-red-500\"\n\n")
	builder.WriteString("Respond with the JSON object only.")
	return builder.String()
}
