package renderer

const terrainVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const terrainFragmentShader = `#version 410 core
in vec3 vColor;
out vec4 fragColor;

void main() {
    fragColor = vec4(vColor, 1.0);
}
`

const shadowVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in float aAlpha;

uniform mat4 uMVP;

out vec2 vUV;
out float vAlpha;

void main() {
    vUV = aUV;
    vAlpha = aAlpha;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// The shadow fragment shader reproduces the two shadow textures
// procedurally: a soft-edged disc for the circle shape, a plain fill for the
// square.
const shadowFragmentShader = `#version 410 core
in vec2 vUV;
in float vAlpha;

uniform int uShape; // 0 = circle, 1 = square

out vec4 fragColor;

void main() {
    float a = vAlpha;
    if (uShape == 0) {
        vec2 d = vUV - vec2(0.5);
        float r = length(d) * 2.0;
        a *= 1.0 - smoothstep(0.8, 1.0, r);
        if (r > 1.0) {
            discard;
        }
    }
    fragColor = vec4(0.0, 0.0, 0.0, a);
}
`
