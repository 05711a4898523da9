package content

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

var blogPosts = []entity.BlogPost{
	{
		ID:       "prompt-engineering-best-practices",
		Title:    "Prompt Engineering Best Practices for Production Systems",
		Author:   "Babaei",
		Date:     "2025-08-25",
		Category: "Best Practices",
		Excerpt:  "Learn the essential techniques for creating robust, reliable prompts that work consistently in production environments.",
		Content: `When building AI-powered applications, the quality of your prompts directly impacts the reliability and effectiveness of your system. Here are the key principles we've learned from deploying hundreds of production prompts.

## 1. Be Specific and Clear

Vague prompts lead to inconsistent outputs. Instead of "analyze this data," specify exactly what type of analysis you want:
- What metrics should be calculated?
- What format should the output take?
- What edge cases should be handled?

## 2. Include Examples

Few-shot learning dramatically improves prompt performance. Always include 2-3 examples of the desired input-output pairs.

## 3. Handle Edge Cases

Production systems encounter unexpected inputs. Your prompts should explicitly handle:
- Empty or malformed data
- Ambiguous requests
- Out-of-scope queries

## 4. Test Thoroughly

Before deploying, test your prompts with:
- Typical use cases
- Edge cases
- Adversarial inputs
- Different input lengths

Remember: A well-engineered prompt is the foundation of a reliable AI system.`,
	},
	{
		ID:       "json-output-reliability",
		Title:    "Ensuring Reliable JSON Output from Language Models",
		Author:   "Babaei",
		Date:     "2025-08-20",
		Category: "Technical Guide",
		Excerpt:  "Stop dealing with malformed JSON responses. Learn proven techniques to get consistent, parseable JSON every time.",
		Content: `One of the biggest challenges in production LLM systems is getting consistent, well-formed JSON output. Here's how to solve this problem.

## The Problem

Language models sometimes return:
- Malformed JSON with syntax errors
- Extra text before or after the JSON
- Inconsistent field names or structures
- Missing required fields

## Solution 1: Explicit Format Instructions

Always specify the exact JSON structure you want, and state that no text may appear before or after the JSON.

## Solution 2: Use Schema Definitions

Define your expected schema clearly:

- "name" (string): Full name
- "email" (string): Email address
- "priority" (string): One of "high", "medium", "low"

## Solution 3: Validation Prompts

Include validation instructions:

1. Has valid syntax
2. Includes all required fields
3. Uses correct data types
4. Contains no extra text

These techniques have reduced our JSON parsing errors by over 95% in production.`,
	},
	{
		ID:       "chatbot-personality-design",
		Title:    "Designing Consistent Chatbot Personalities",
		Author:   "Babaei",
		Date:     "2025-08-15",
		Category: "UX Design",
		Excerpt:  "Create chatbots with distinctive, consistent personalities that users love to interact with.",
		Content: `Your chatbot's personality is crucial for user engagement and brand consistency. Here's how to design and maintain a compelling bot personality.

## Define Core Traits

Start with 3-5 core personality traits:
- Professional but approachable
- Knowledgeable without being condescending
- Patient and helpful
- Slightly humorous when appropriate
- Proactive in offering assistance

## Create a Personality Document

Document specific behaviors:
- How does your bot greet users?
- What tone does it use for different situations?
- How does it handle errors or confusion?
- What phrases or expressions are characteristic?

## Consistency Techniques

Use role definition, behavioral guidelines, and response templates to keep interactions uniform.

## Testing Personality Consistency

Regular testing ensures your bot maintains its personality:
- Test with different user moods (frustrated, excited, confused)
- Verify responses across various topics
- Check for personality drift over long conversations

A well-designed personality makes your chatbot memorable and trustworthy.`,
	},
}

var privacyPolicy = entity.StaticPage{
	Title:       "Privacy Policy",
	LastUpdated: "2025-08-30",
	Body: `## Information We Collect

**Account Information**: When you create an account, we collect your email address and any profile information you provide.

**Usage Data**: We collect information about how you use our service, including prompts created, templates used, and feature interactions.

**Technical Data**: We automatically collect IP addresses, browser information, and device identifiers for security and performance purposes.

## How We Use Your Information

- **Service Provision**: To provide and improve our prompt engineering tools
- **Account Management**: To manage your account and provide customer support
- **Analytics**: To understand usage patterns and improve our service
- **Security**: To protect against fraud and unauthorized access

## Data Storage and Security

**Local Processing**: Your prompts and data are processed locally when possible. We use industry-standard encryption for data transmission and storage.

**Third-Party Services**: We may use third-party services (like OpenAI/Ollama) for AI processing. These services have their own privacy policies.

**Retention**: We retain your data for as long as your account is active, plus a reasonable period for backup purposes.

## Your Rights

You have the right to:
- Access your personal data
- Correct inaccurate information
- Export your prompts and workspace data

## Cookies and Tracking

We do not use tracking cookies for advertising purposes.

## Changes to This Policy

We may update this privacy policy from time to time. We will notify users of significant changes via email or in-app notifications.

## Contact Us

If you have questions about this privacy policy, please contact us at inv.alirezababazadehzarei@gmail.com`,
}

var termsOfService = entity.StaticPage{
	Title:       "Terms of Service",
	LastUpdated: "2025-08-30",
	Body: `## 1. Acceptance of Terms

By accessing and using Prompt Engineer, you accept and agree to be bound by the terms and provisions of this agreement.

## 2. Use License

Permission is granted to temporarily use Prompt Engineer for personal or commercial prompt engineering purposes. This is the grant of a license, not a transfer of title.

## 3. User Account

- You are responsible for maintaining the confidentiality of your account
- You are responsible for all activities that occur under your account
- You must notify us immediately of any unauthorized use

## 4. Acceptable Use

You agree not to:
- Use the service for any illegal purpose
- Attempt to gain unauthorized access to the service
- Interfere with or disrupt the service
- Upload malicious code or content

## 5. Intellectual Property

- Your prompts remain your property
- We retain rights to the platform and its features
- You grant us license to use your feedback to improve the service

## 6. Service Availability

- We strive for 99.9% uptime but do not guarantee uninterrupted service
- We may modify or discontinue features with notice
- Scheduled maintenance will be announced in advance

## 7. Limitation of Liability

Prompt Engineer is provided "as is" without warranties of any kind. We are not liable for any damages arising from use of the service.

## 8. Termination

We reserve the right to terminate accounts that violate these terms.

## 9. Changes to Terms

We may update these terms at any time. Continued use constitutes acceptance of modified terms.

## 10. Contact

Questions about Terms of Service: inv.alirezababazadehzarei@gmail.com`,
}
