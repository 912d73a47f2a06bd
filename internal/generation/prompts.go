package generation

import (
	"fmt"
	"strings"
)

// PlatformTwitter gets the short-form social post guidance.
const PlatformTwitter = "Twitter"

func ideasPrompt(topic string) string {
	return fmt.Sprintf(`Act as a digital marketing expert. Generate 5 creative and engaging content ideas for a blog and social media about the following topic: "%s". The ideas should be distinct and appeal to a wide audience. Provide the output as a JSON array of strings.`, topic)
}

func socialPostPrompt(p SocialPostParams) string {
	specifics := "Structure it for readability with short paragraphs or bullet points and include 3-5 relevant hashtags."
	if p.Platform == PlatformTwitter {
		specifics = "Keep it concise (under 280 characters) and include 2-3 relevant hashtags."
	}

	parts := []string{
		fmt.Sprintf(`Act as a savvy social media manager. Write a compelling %s post based on this topic: "%s".`, p.Platform, p.Idea),
		fmt.Sprintf("The tone should be %s.", p.Tone),
	}
	if p.Audience != "" {
		parts = append(parts, fmt.Sprintf(`The target audience is "%s".`, p.Audience))
	}
	parts = append(parts, specifics)

	return strings.Join(parts, " ")
}

func emailPrompt(product, audience string) string {
	return fmt.Sprintf(`You are an expert email marketer. Generate a complete email campaign for a product described as: "%s". The target audience is: "%s".`, product, audience)
}

func adCopyPrompt(product, platform string) string {
	return fmt.Sprintf(`You are a professional copywriter specializing in high-converting ads. Generate ad copy for a product described as: "%s". The ad will be for the %s platform.`, product, platform)
}

var emailSchema = Object(
	Field{Name: "subject", Description: "A compelling, short subject line for the email."},
	Field{Name: "body", Description: "The full email body, written in a persuasive and friendly tone, with a clear call to action and placeholders like [Customer Name] and [Your Company]."},
)

func adCopySchema(platform string) *Schema {
	return Object(
		Field{Name: "headline", Description: fmt.Sprintf("A short, attention-grabbing headline for a %s ad.", platform)},
		Field{Name: "description", Description: fmt.Sprintf("A concise and persuasive description for the %s ad.", platform)},
	)
}
