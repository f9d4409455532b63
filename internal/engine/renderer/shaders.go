package renderer

// The vertex shader evaluates the fixed-function lighting equation per
// vertex in world space. Light type values match lighting.Type.
const vertexShader = `
#version 410 core

#define MAX_LIGHTS 8
#define POINT 1
#define SPOT 2
#define DIRECTIONAL 3

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;
layout (location = 3) in vec2 aTex0;
layout (location = 4) in vec2 aTex1;

uniform mat4 uWorld;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat4 uNormalMatrix;
uniform vec3 uEye;

uniform bool uHasNormal;
uniform bool uHasColor;
uniform bool uLighting;
uniform bool uSpecular;
uniform vec3 uAmbient;

uniform vec4 uMatDiffuse;
uniform vec4 uMatAmbient;
uniform vec4 uMatSpecular;
uniform vec4 uMatEmissive;
uniform float uMatPower;

uniform int uLightCount;
uniform int uLightType[MAX_LIGHTS];
uniform vec3 uLightPosition[MAX_LIGHTS];
uniform vec3 uLightDirection[MAX_LIGHTS];
uniform vec3 uLightDiffuse[MAX_LIGHTS];
uniform vec3 uLightSpecular[MAX_LIGHTS];
uniform vec3 uLightAmbient[MAX_LIGHTS];
uniform vec3 uLightAtten[MAX_LIGHTS];
uniform vec3 uLightCone[MAX_LIGHTS];
uniform float uLightRange[MAX_LIGHTS];

out vec4 vDiffuse;
out vec3 vSpecular;
out vec2 vTex0;
out vec2 vTex1;

void main() {
	vec4 world = uWorld * vec4(aPos, 1.0);
	gl_Position = uProjection * uView * world;
	vTex0 = aTex0;
	vTex1 = aTex1;
	vSpecular = vec3(0.0);

	vec4 vertexColor = uHasColor ? aColor : vec4(1.0);
	if (!uLighting) {
		vDiffuse = vertexColor;
		return;
	}

	// A vertex colour replaces the material diffuse.
	vec4 matDiffuse = uHasColor ? aColor : uMatDiffuse;
	vec3 N = uHasNormal ? normalize(mat3(uNormalMatrix) * aNormal) : vec3(0.0);
	vec3 P = world.xyz;
	vec3 V = normalize(uEye - P);

	vec3 ambient = uAmbient * uMatAmbient.rgb;
	vec3 diffuse = vec3(0.0);
	vec3 specular = vec3(0.0);

	for (int i = 0; i < uLightCount; i++) {
		vec3 L;
		float reach = 1.0;

		if (uLightType[i] == DIRECTIONAL) {
			L = -uLightDirection[i];
		} else {
			vec3 toLight = uLightPosition[i] - P;
			float d = length(toLight);
			if (d > uLightRange[i]) {
				continue;
			}
			L = d > 0.0 ? toLight / d : vec3(0.0, 1.0, 0.0);

			vec3 at = uLightAtten[i];
			float den = at.x + at.y * d + at.z * d * d;
			if (den > 0.0) {
				reach = 1.0 / den;
			}

			if (uLightType[i] == SPOT) {
				vec3 cone = uLightCone[i];
				float rho = dot(-L, uLightDirection[i]);
				if (rho <= cone.y) {
					continue;
				}
				if (rho <= cone.x) {
					reach *= pow((rho - cone.y) / (cone.x - cone.y), cone.z);
				}
			}
		}

		ambient += reach * uLightAmbient[i] * uMatAmbient.rgb;

		float ndl = max(dot(N, L), 0.0);
		diffuse += reach * uLightDiffuse[i] * ndl;

		if (uSpecular && ndl > 0.0) {
			vec3 H = normalize(L + V);
			float ndh = max(dot(N, H), 0.0);
			float s = uMatPower > 0.0 ? pow(ndh, uMatPower) : 1.0;
			specular += reach * uLightSpecular[i] * s;
		}
	}

	vec3 color = uMatEmissive.rgb + ambient + diffuse * matDiffuse.rgb;
	vDiffuse = vec4(clamp(color, 0.0, 1.0), matDiffuse.a);
	vSpecular = clamp(specular * uMatSpecular.rgb, 0.0, 1.0);
}
`

// The fragment shader runs two texture stages. Op values match texture.Op
// and texture.AlphaOp.
const fragmentShader = `
#version 410 core

#define OP_DISABLE 0
#define OP_SELECT 1
#define OP_MODULATE 2
#define OP_MODULATE2X 3
#define OP_MODULATE4X 4
#define OP_ADD 5
#define OP_SUBTRACT 6

#define ALPHA_MODULATE 1
#define ALPHA_BLEND_DIFFUSE 2

in vec4 vDiffuse;
in vec3 vSpecular;
in vec2 vTex0;
in vec2 vTex1;

uniform sampler2D uTex0;
uniform sampler2D uTex1;
uniform int uOp0;
uniform int uOp1;
uniform int uAlphaOp0;
uniform int uAlphaOp1;

out vec4 FragColor;

vec3 combine(int op, vec3 t, vec3 c) {
	vec3 v = c;
	if (op == OP_SELECT) {
		v = t;
	} else if (op == OP_MODULATE) {
		v = t * c;
	} else if (op == OP_MODULATE2X) {
		v = 2.0 * t * c;
	} else if (op == OP_MODULATE4X) {
		v = 4.0 * t * c;
	} else if (op == OP_ADD) {
		v = t + c;
	} else if (op == OP_SUBTRACT) {
		v = t - c;
	}
	return clamp(v, 0.0, 1.0);
}

float combineAlpha(int op, float t, float c, float d) {
	if (op == ALPHA_MODULATE) {
		return t * c;
	}
	if (op == ALPHA_BLEND_DIFFUSE) {
		return t * d + c * (1.0 - d);
	}
	return c;
}

void main() {
	vec4 current = vDiffuse;

	if (uOp0 != OP_DISABLE) {
		vec4 t = texture(uTex0, vTex0);
		current.rgb = combine(uOp0, t.rgb, current.rgb);
		current.a = combineAlpha(uAlphaOp0, t.a, current.a, vDiffuse.a);

		if (uOp1 != OP_DISABLE) {
			t = texture(uTex1, vTex1);
			current.rgb = combine(uOp1, t.rgb, current.rgb);
			current.a = combineAlpha(uAlphaOp1, t.a, current.a, vDiffuse.a);
		}
	}

	FragColor = vec4(clamp(current.rgb + vSpecular, 0.0, 1.0), current.a);
}
`
