package schemas

// documentSchema describes the canonical resume payload. Skills accept
// either the categorized shape or the legacy technical/soft shape; the
// normalizer handles the conversion.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ResumeDocument",
  "type": "object",
  "properties": {
    "contact": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"},
        "website": {"type": "string"},
        "github": {"type": "string"},
        "leetcode": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "company": {"type": "string"},
          "position": {"type": "string"},
          "location": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "start_year": {"type": "string"},
          "end_year": {"type": "string"},
          "grade": {"type": "string"}
        }
      }
    },
    "skills": {
      "oneOf": [
        {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "category": {"type": "string"},
              "items": {"type": "array", "items": {"type": "string"}}
            }
          }
        },
        {
          "type": "object",
          "properties": {
            "technical": {"type": "array", "items": {"type": "string"}},
            "soft": {"type": "array", "items": {"type": "string"}}
          },
          "additionalProperties": false
        }
      ]
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "url": {"type": "string"}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "year": {"type": "string"}
        }
      }
    },
    "languages": {
      "type": "array",
      "items": {
        "oneOf": [
          {"type": "string"},
          {
            "type": "object",
            "properties": {
              "id": {"type": "string"},
              "name": {"type": "string"},
              "proficiency": {"type": "string"}
            }
          }
        ]
      }
    },
    "achievements": {
      "type": "array",
      "items": {
        "oneOf": [
          {"type": "string"},
          {
            "type": "object",
            "properties": {
              "id": {"type": "string"},
              "title": {"type": "string"},
              "description": {"type": "string"},
              "date": {"type": "string"}
            }
          }
        ]
      }
    },
    "template": {"type": "string"},
    "theme": {
      "type": "object",
      "properties": {
        "primary_color": {"type": "string"},
        "secondary_color": {"type": "string"}
      }
    }
  }
}`
